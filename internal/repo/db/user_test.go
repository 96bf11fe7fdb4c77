package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetUserByEmail(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	cols := []string{
		"id", "name", "email", "password", "account_type",
		"is_active", "created_at", "updated_at",
	}

	mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
		WithArgs("alice@example.com").
		WillReturnRows(
			sqlmock.NewRows(cols).AddRow(
				uid, "alice", "alice@example.com", "$2a$07$hash",
				md.AccountInternal, true, time.Now(), time.Now(),
			),
		)

	u, err := r.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, u.ID)
	assert.True(t, u.IsInternal())

	mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = r.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUserByID(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	cols := []string{
		"id", "name", "email", "password", "account_type",
		"is_active", "created_at", "updated_at",
	}

	mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
		WithArgs(uid).
		WillReturnRows(
			sqlmock.NewRows(cols).AddRow(
				uid, "bob", "bob@example.com", "$2a$07$hash",
				md.AccountPortal, true, time.Now(), time.Now(),
			),
		)

	u, err := r.GetUserByID(context.Background(), uid)
	require.NoError(t, err)
	assert.False(t, u.IsInternal())

	mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
		WithArgs(uid).
		WillReturnError(sql.ErrNoRows)

	_, err = r.GetUserByID(context.Background(), uid)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
