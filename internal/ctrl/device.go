package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/dto"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	devicesListKey = "devices-list:%v:%v:%v"
	devicePattern  = "devices-*"
)

// RecordActivity refreshes the session trace from the request metadata and
// persists a device log row for it. Requests without usable metadata are
// skipped silently; a session that already has a log row is not logged
// again, whatever its platform or IP now looks like.
func (c *Controller) RecordActivity(
	ctx context.Context,
	s *session.Session,
	d *dto.DeviceRequest,
) error {
	const op = "devices.RecordActivity.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	trace, ok := s.UpdateTrace(d.UA, d.IP)
	if !ok {
		return nil
	}

	if err := c.sessions.Save(ctx, s); err != nil {
		zap.L().Warn("failed to save session", zap.String("op", op), zap.Error(err))
	}

	identifier := s.Identifier()
	exists, err := c.repo.DeviceLogExists(ctx, identifier, s.UID)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	info := c.geo.Lookup(ctx, trace.IPAddress)

	log := &md.DeviceLog{
		SessionIdentifier: identifier,
		Platform:          trace.Platform,
		Browser:           trace.Browser,
		IPAddress:         trace.IPAddress,
		DeviceType:        md.DeviceTypeOf(trace.Platform),
		UserID:            s.UID,
		FirstActivity:     trace.FirstActivity,
		LastActivity:      trace.LastActivity,
	}
	if info.Country != "" {
		log.Country = &info.Country
	}
	if info.City != "" {
		log.City = &info.City
	}

	if _, err = c.repo.InsertDeviceLog(ctx, log); err != nil {
		return err
	}

	c.cache.InvalidateKeysByPattern(ctx, devicePattern)

	return nil
}

// ListCurrentDevices returns the deduplicated device view. IsCurrent is
// caller-dependent and computed after the cache, never stored in it.
func (c *Controller) ListCurrentDevices(
	ctx context.Context,
	callerSID string,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListCurrentDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &dto.PaginatedDeviceResponse{}
	cacheKey := fmt.Sprintf(devicesListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, res); err != nil {
		res, err = c.repo.ListCurrentDevices(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}

		bytes, err := json.Marshal(res)
		if err == nil {
			c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
		}
	}

	markCurrent(res.Data, callerSID)

	return res, nil
}

func markCurrent(devices []md.CurrentDevice, callerSID string) {
	if callerSID == "" {
		return
	}

	identifier := session.Identifier(callerSID)
	for i := range devices {
		devices[i].IsCurrent = devices[i].SessionIdentifier == identifier
	}
}

func (c *Controller) LinkedIPAddresses(
	ctx context.Context,
	deviceID uint64,
) (*dto.LinkedIPsResponse, error) {
	const op = "devices.LinkedIPAddresses.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetCurrentDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ips, err := c.repo.LinkedIPAddresses(ctx, &device.DeviceLog)
	if err != nil {
		return nil, err
	}

	return &dto.LinkedIPsResponse{IPAddresses: ips}, nil
}

// PurgeStale runs both retention sweeps: superseded rows within each
// (identifier, platform, browser, ip) group, then stale rows past the
// retention window. The newest row of every group survives both.
func (c *Controller) PurgeStale(ctx context.Context) (int64, error) {
	const op = "devices.PurgeStale.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	superseded, err := c.repo.PurgeSuperseded(ctx)
	if err != nil {
		return 0, err
	}

	stale, err := c.repo.PurgeOlderThan(ctx, time.Now().Add(-config.DeviceLogRetention))
	if err != nil {
		return superseded, err
	}

	total := superseded + stale
	if total > 0 {
		zap.L().Info(
			"purged stale device logs",
			zap.String("op", op),
			zap.Int64("superseded", superseded),
			zap.Int64("stale", stale),
		)
		c.cache.InvalidateKeysByPattern(ctx, devicePattern)
	}

	return total, nil
}

func (c *Controller) DeleteDeviceLog(ctx context.Context, deviceID uint64) error {
	const op = "devices.DeleteDeviceLog.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteDeviceLog(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.InvalidateKeysByPattern(ctx, devicePattern)

	return nil
}

// DeleteLogsForUser removes every log row of the user and best-effort
// drops the matching session blobs.
func (c *Controller) DeleteLogsForUser(ctx context.Context, uid uuid.UUID) (int64, error) {
	const op = "devices.DeleteLogsForUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	identifiers, err := c.repo.IdentifiersForUser(ctx, uid)
	if err != nil {
		return 0, err
	}

	deleted, err := c.repo.DeleteLogsForUser(ctx, uid)
	if err != nil {
		return 0, err
	}

	if len(identifiers) > 0 {
		c.sessions.DeleteFromIdentifiers(ctx, identifiers)
	}

	c.cache.InvalidateKeysByPattern(ctx, devicePattern)

	return deleted, nil
}
