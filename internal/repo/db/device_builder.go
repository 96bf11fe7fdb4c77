package db

import (
	"context"

	"github.com/JMURv/device-sessions/internal/config"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceListQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

// notSuperseded is the anti-join keeping only the winning row per
// (user_id, session_identifier, platform, browser) group among non-revoked
// rows. The windowing lives here rather than in a database VIEW so filters
// stay parameterized.
const notSuperseded = `NOT EXISTS (
	SELECT 1
	FROM device_logs d2
	WHERE
		d2.user_id = d.user_id
		AND d2.session_identifier = d.session_identifier
		AND d2.platform = d.platform
		AND d2.browser = d.browser
		AND (
			d2.last_activity > d.last_activity
			OR (d2.last_activity = d.last_activity AND d2.id > d.id)
		)
		AND d2.revoked = FALSE
)`

func buildCurrentDeviceQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (deviceListQuery, error) {
	const op = "devices.buildCurrentDeviceQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().
		From("device_logs d").
		Where(sq.Eq{"d.revoked": false}).
		Where(notSuperseded).
		PlaceholderFormat(sq.Dollar)

	if uid, ok := filters["user_id"]; ok {
		query = query.Where(sq.Eq{"d.user_id": uid})
	}

	if platform, ok := filters["platform"].(string); ok && platform != "" {
		query = query.Where(sq.Eq{"d.platform": platform})
	}

	if browser, ok := filters["browser"].(string); ok && browser != "" {
		query = query.Where(sq.Eq{"d.browser": browser})
	}

	countSql, countArgs, err := query.Columns("COUNT(d.id)").ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return deviceListQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"d.id",
			"d.session_identifier",
			"d.platform",
			"d.browser",
			"d.ip_address",
			"d.country",
			"d.city",
			"d.device_type",
			"d.user_id",
			"d.first_activity",
			"d.last_activity",
			"d.revoked",
		).
		OrderBy("d.last_activity DESC", "d.id DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return deviceListQuery{}, err
	}

	return deviceListQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
