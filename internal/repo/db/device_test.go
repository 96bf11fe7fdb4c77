package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &Repository{conn: sqlx.NewDb(conn, "sqlmock")}, mock
}

func testDeviceLog(uid uuid.UUID) *md.DeviceLog {
	country, city := "Spain", "Valencia"
	return &md.DeviceLog{
		SessionIdentifier: "abcSESS1234567890123456789012345678901234a",
		Platform:          "Linux",
		Browser:           "Firefox",
		IPAddress:         "192.168.1.1",
		Country:           &country,
		City:              &city,
		DeviceType:        md.DeviceComputer,
		UserID:            uid,
		FirstActivity:     time.Now(),
		LastActivity:      time.Now(),
	}
}

func TestRepository_InsertDeviceLog(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	d := testDeviceLog(uid)

	tests := []struct {
		name        string
		mock        func()
		expectedID  uint64
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertDeviceLog)).
					WithArgs(
						d.SessionIdentifier,
						d.Platform,
						d.Browser,
						d.IPAddress,
						d.Country,
						d.City,
						d.DeviceType,
						d.UserID,
						d.FirstActivity,
						d.LastActivity,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectedID: 1,
		},
		{
			name: "ReadOnlyTxRetriesOnFreshTx",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertDeviceLog)).
					WithArgs(
						d.SessionIdentifier,
						d.Platform,
						d.Browser,
						d.IPAddress,
						d.Country,
						d.City,
						d.DeviceType,
						d.UserID,
						d.FirstActivity,
						d.LastActivity,
					).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ReadOnlySQLTransaction})
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertDeviceLog)).
					WithArgs(
						d.SessionIdentifier,
						d.Platform,
						d.Browser,
						d.IPAddress,
						d.Country,
						d.City,
						d.DeviceType,
						d.UserID,
						d.FirstActivity,
						d.LastActivity,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectCommit()
			},
			expectedID: 2,
		},
		{
			name: "DatabaseError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertDeviceLog)).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.InsertDeviceLog(context.Background(), d)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeviceLogExists(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	identifier := "abcSESS1234567890123456789012345678901234a"

	mock.ExpectQuery(regexp.QuoteMeta(deviceLogExists)).
		WithArgs(identifier, uid).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := r.DeviceLogExists(context.Background(), identifier, uid)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta(deviceLogExists)).
		WithArgs(identifier, uid).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = r.DeviceLogExists(context.Background(), identifier, uid)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetCurrentDevice(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	d := testDeviceLog(uid)

	cols := []string{
		"id", "session_identifier", "platform", "browser", "ip_address",
		"country", "city", "device_type", "user_id", "first_activity",
		"last_activity", "revoked",
	}

	mock.ExpectQuery(regexp.QuoteMeta(getDeviceLog)).
		WithArgs(uint64(7)).
		WillReturnRows(
			sqlmock.NewRows(cols).AddRow(
				7, d.SessionIdentifier, d.Platform, d.Browser, d.IPAddress,
				d.Country, d.City, d.DeviceType, d.UserID, d.FirstActivity,
				d.LastActivity, false,
			),
		)

	device, err := r.GetCurrentDevice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), device.ID)
	assert.Equal(t, d.SessionIdentifier, device.SessionIdentifier)
	assert.Equal(t, "Linux Firefox", device.DisplayName)

	mock.ExpectQuery(regexp.QuoteMeta(getDeviceLog)).
		WithArgs(uint64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err = r.GetCurrentDevice(context.Background(), 8)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RevokeByIdentifiers(t *testing.T) {
	r, mock := newTestRepo(t)

	identifiers := []string{"session-a", "session-b"}
	q, args, err := sqlx.In(revokeByIdentifiers, identifiers)
	require.NoError(t, err)
	q = r.conn.Rebind(q)

	mock.ExpectExec(regexp.QuoteMeta(q)).
		WithArgs(args[0], args[1]).
		WillReturnResult(sqlmock.NewResult(0, 3))

	// Revocation hits all history rows under the identifiers, which is why
	// 2 identifiers may flip 3 rows.
	count, err := r.RevokeByIdentifiers(context.Background(), identifiers)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = r.RevokeByIdentifiers(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PurgeSweeps(t *testing.T) {
	r, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(purgeSuperseded)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	count, err := r.PurgeSuperseded(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	cutoff := time.Now().Add(-2 * time.Hour)
	mock.ExpectExec(regexp.QuoteMeta(purgeOlderThan)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err = r.PurgeOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ActiveIdentifiersForUser(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(activeIdentifiersForUser)).
		WithArgs(uid).
		WillReturnRows(
			sqlmock.NewRows([]string{"session_identifier"}).
				AddRow("session-a").
				AddRow("session-b"),
		)

	identifiers, err := r.ActiveIdentifiersForUser(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, []string{"session-a", "session-b"}, identifiers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LinkedIPAddresses(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	d := testDeviceLog(uid)

	mock.ExpectQuery(regexp.QuoteMeta(linkedIPs)).
		WithArgs(d.SessionIdentifier, d.Platform, d.Browser).
		WillReturnRows(
			sqlmock.NewRows([]string{"ip_address"}).
				AddRow("192.168.1.1").
				AddRow("10.0.0.1"),
		)

	ips, err := r.LinkedIPAddresses(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.1\n10.0.0.1", ips)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteLogsForUser(t *testing.T) {
	r, mock := newTestRepo(t)

	uid := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(deleteLogsForUser)).
		WithArgs(uid).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := r.DeleteLogsForUser(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
