package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/JMURv/device-sessions/internal/dto"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// InsertDeviceLog appends one observation row. When the ambient connection
// is serving a read-only transaction (replica context), the insert is
// retried on a fresh short-lived read-write transaction committed
// immediately; the ambient transaction is never promoted.
func (r *Repository) InsertDeviceLog(ctx context.Context, d *md.DeviceLog) (uint64, error) {
	const op = "devices.InsertDeviceLog.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uint64
	err := r.conn.QueryRowContext(
		ctx, insertDeviceLog,
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
	).Scan(&id)

	if err != nil && isReadOnlyTx(err) {
		zap.L().Debug(
			"read-only transaction, retrying insert on a fresh tx",
			zap.String("op", op),
		)
		return r.insertDeviceLogTx(ctx, d)
	}

	if err != nil {
		return 0, err
	}

	zap.L().Info(
		"inserted device log",
		zap.String("uid", d.UserID.String()),
		zap.String("session", d.SessionIdentifier),
	)

	return id, nil
}

func (r *Repository) insertDeviceLogTx(ctx context.Context, d *md.DeviceLog) (uint64, error) {
	tx, err := r.conn.BeginTxx(ctx, &sql.TxOptions{ReadOnly: false})
	if err != nil {
		return 0, err
	}

	var id uint64
	err = tx.QueryRowContext(
		ctx, insertDeviceLog,
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
	).Scan(&id)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to rollback insert tx", zap.Error(rbErr))
		}
		return 0, err
	}

	return id, tx.Commit()
}

func isReadOnlyTx(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ReadOnlySQLTransaction
}

// DeviceLogExists reports whether any row already exists for the
// (session identifier, user) pairing. Deliberately coarser than the
// per-(platform, browser, ip) grouping used by the sweeps and the current
// view: one row per session generation.
func (r *Repository) DeviceLogExists(
	ctx context.Context,
	sessionIdentifier string,
	uid uuid.UUID,
) (bool, error) {
	const op = "devices.DeviceLogExists.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var exists bool
	err := r.conn.QueryRowContext(ctx, deviceLogExists, sessionIdentifier, uid).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) ListCurrentDevices(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListCurrentDevices.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildCurrentDeviceQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.QueryRowContext(ctx, q.countQ, q.countArgs...).Scan(&count); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, q.dataQ, q.dataArgs...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("failed to close rows", zap.String("op", op), zap.Error(err))
		}
	}()

	devices := make([]md.CurrentDevice, 0, size)
	for rows.Next() {
		var d md.CurrentDevice
		if err = rows.StructScan(&d.DeviceLog); err != nil {
			return nil, err
		}
		d.DisplayName = d.DeviceLog.DisplayName()
		devices = append(devices, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedDeviceResponse{
		Data:        devices,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

// GetCurrentDevice resolves one row of the current-device projection by its
// underlying log id.
func (r *Repository) GetCurrentDevice(ctx context.Context, id uint64) (*md.CurrentDevice, error) {
	const op = "devices.GetCurrentDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var d md.CurrentDevice
	err := r.conn.QueryRowxContext(ctx, getDeviceLog, id).StructScan(&d.DeviceLog)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	d.DisplayName = d.DeviceLog.DisplayName()
	return &d, nil
}

// LinkedIPAddresses returns every distinct IP ever seen for the row's
// (session identifier, platform, browser) group, newline-joined.
func (r *Repository) LinkedIPAddresses(ctx context.Context, d *md.DeviceLog) (string, error) {
	const op = "devices.LinkedIPAddresses.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.QueryContext(ctx, linkedIPs, d.SessionIdentifier, d.Platform, d.Browser)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("failed to close rows", zap.String("op", op), zap.Error(err))
		}
	}()

	ips := make([]string, 0, 4)
	for rows.Next() {
		var ip string
		if err = rows.Scan(&ip); err != nil {
			return "", err
		}
		ips = append(ips, ip)
	}

	if err = rows.Err(); err != nil {
		return "", err
	}

	return strings.Join(ips, "\n"), nil
}

func (r *Repository) ActiveIdentifiersForUser(ctx context.Context, uid uuid.UUID) ([]string, error) {
	const op = "devices.ActiveIdentifiersForUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.QueryContext(ctx, activeIdentifiersForUser, uid)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("failed to close rows", zap.String("op", op), zap.Error(err))
		}
	}()

	identifiers := make([]string, 0, 4)
	for rows.Next() {
		var identifier string
		if err = rows.Scan(&identifier); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, identifier)
	}

	return identifiers, rows.Err()
}

// IdentifiersForUser returns every session identifier the user has log rows
// for, revoked included. Deletion flows need the full set to clean up the
// session store.
func (r *Repository) IdentifiersForUser(ctx context.Context, uid uuid.UUID) ([]string, error) {
	const op = "devices.IdentifiersForUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.QueryContext(ctx, identifiersForUser, uid)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("failed to close rows", zap.String("op", op), zap.Error(err))
		}
	}()

	identifiers := make([]string, 0, 4)
	for rows.Next() {
		var identifier string
		if err = rows.Scan(&identifier); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, identifier)
	}

	return identifiers, rows.Err()
}

// RevokeByIdentifiers flips revoked on every row of the given session
// identifiers, the whole session history and not just the current rows.
func (r *Repository) RevokeByIdentifiers(ctx context.Context, identifiers []string) (int64, error) {
	const op = "devices.RevokeByIdentifiers.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(identifiers) == 0 {
		return 0, nil
	}

	q, args, err := sqlx.In(revokeByIdentifiers, identifiers)
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, r.conn.Rebind(q), args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) PurgeSuperseded(ctx context.Context) (int64, error) {
	const op = "devices.PurgeSuperseded.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, purgeSuperseded)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "devices.PurgeOlderThan.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, purgeOlderThan, cutoff)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) DeleteDeviceLog(ctx context.Context, id uint64) error {
	const op = "devices.DeleteDeviceLog.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteDeviceLog, id)
	if err != nil {
		return err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteLogsForUser(ctx context.Context, uid uuid.UUID) (int64, error) {
	const op = "devices.DeleteLogsForUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteLogsForUser, uid)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
