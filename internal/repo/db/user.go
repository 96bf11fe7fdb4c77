package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) GetUserByID(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var u md.User
	err := r.conn.QueryRowxContext(ctx, userGetByIDQ, uid).StructScan(&u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var u md.User
	err := r.conn.QueryRowxContext(ctx, userGetByEmailQ, email).StructScan(&u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}
