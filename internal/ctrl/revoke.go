package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/device-sessions/internal/dto"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func failure(msg string) dto.RevocationResult {
	return dto.RevocationResult{Success: false, Message: msg}
}

// Revoke resolves the selected device ids against the current-device view
// and revokes their sessions. Validation problems come back as structured
// failure results, never as errors.
func (c *Controller) Revoke(
	ctx context.Context,
	deviceIDs []uint64,
	actor *md.User,
	actorSID string,
) dto.RevocationResult {
	const op = "devices.Revoke.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(deviceIDs) == 0 {
		return failure("No devices selected.")
	}

	devices := make([]md.CurrentDevice, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		d, err := c.repo.GetCurrentDevice(ctx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}

			zap.L().Error("failed to resolve device", zap.String("op", op), zap.Error(err))
			return failure("Failed to resolve selected devices.")
		}
		devices = append(devices, *d)
	}

	if len(devices) == 0 {
		return failure("No active devices matched the selection.")
	}

	return c.revokeDevices(ctx, devices, actor, actorSID)
}

// revokeDevices turns a resolved device selection into an identifier
// revocation. Touching a foreign device requires confirmed identity.
func (c *Controller) revokeDevices(
	ctx context.Context,
	devices []md.CurrentDevice,
	actor *md.User,
	actorSID string,
) dto.RevocationResult {
	const op = "devices.revokeDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	for i := range devices {
		if devices[i].UserID != actor.ID {
			if !c.identity.Confirm(ctx, actor) {
				return failure("Identity not confirmed.")
			}
			break
		}
	}

	identifiers := make([]string, 0, len(devices))
	for i := range devices {
		identifiers = append(identifiers, devices[i].SessionIdentifier)
	}

	return c.revokeIdentifiers(ctx, identifiers, actorSID)
}

// revokeIdentifiers is the shared core of all revocation flows. The session
// store deletion and the revoked-flag update are not atomic; the flag
// update always runs, even when store cleanup went badly.
func (c *Controller) revokeIdentifiers(
	ctx context.Context,
	identifiers []string,
	actorSID string,
) dto.RevocationResult {
	const op = "devices.revokeIdentifiers.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	actorIdentifier := ""
	if actorSID != "" {
		actorIdentifier = session.Identifier(actorSID)
	}

	mustLogout := false
	seen := make(map[string]struct{}, len(identifiers))
	unique := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		if identifier == actorIdentifier {
			mustLogout = true
		}
		if _, ok := seen[identifier]; ok {
			continue
		}
		seen[identifier] = struct{}{}
		unique = append(unique, identifier)
	}

	deleted := c.sessions.DeleteFromIdentifiers(ctx, unique)

	revoked, err := c.repo.RevokeByIdentifiers(ctx, unique)
	if err != nil {
		zap.L().Error(
			"failed to flag sessions revoked",
			zap.String("op", op),
			zap.Strings("identifiers", unique),
			zap.Error(err),
		)

		return dto.RevocationResult{
			Success:      false,
			Message:      "Failed to revoke sessions.",
			DeletedCount: deleted,
		}
	}

	c.cache.InvalidateKeysByPattern(ctx, devicePattern)

	msg := fmt.Sprintf("Revoked %d session log entries.", revoked)
	if mustLogout {
		msg = "Your current session was revoked, please sign in again."
	}

	return dto.RevocationResult{
		Success:      true,
		Message:      msg,
		RevokedCount: revoked,
		DeletedCount: deleted,
		Logout:       mustLogout,
	}
}

// RevokeAllSessionsForUser revokes every active session of an internal
// account. Portal and public accounts are rejected without mutations.
func (c *Controller) RevokeAllSessionsForUser(
	ctx context.Context,
	uid uuid.UUID,
	actor *md.User,
	actorSID string,
) dto.RevocationResult {
	const op = "devices.RevokeAllSessionsForUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return failure("User does not exist.")
		}

		zap.L().Error("failed to load user", zap.String("op", op), zap.Error(err))
		return failure("Failed to load user.")
	}

	if !user.IsInternal() {
		return failure("Sessions can only be revoked for internal users.")
	}

	if uid != actor.ID && !c.identity.Confirm(ctx, actor) {
		return failure("Identity not confirmed.")
	}

	identifiers, err := c.repo.ActiveIdentifiersForUser(ctx, uid)
	if err != nil {
		zap.L().Error("failed to list active sessions", zap.String("op", op), zap.Error(err))
		return failure("Failed to list active sessions.")
	}

	if len(identifiers) == 0 {
		return dto.RevocationResult{Success: true, Message: "No active sessions found."}
	}

	return c.revokeIdentifiers(ctx, identifiers, actorSID)
}

// BulkRevokeForUsers applies RevokeAllSessionsForUser per user. One user's
// failure never aborts the rest.
func (c *Controller) BulkRevokeForUsers(
	ctx context.Context,
	uids []uuid.UUID,
	actor *md.User,
	actorSID string,
) dto.BatchResult {
	const op = "devices.BulkRevokeForUsers.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := dto.BatchResult{}
	for _, uid := range uids {
		r := c.RevokeAllSessionsForUser(ctx, uid, actor, actorSID)
		if r.Success {
			res.Successes++
			continue
		}

		res.Failures++
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", uid, r.Message))
	}

	res.Message = fmt.Sprintf(
		"Revoked sessions for %d of %d users.",
		res.Successes, len(uids),
	)

	if c.email != nil && actor.Email != "" {
		if err := c.email.SendRevocationSummary(ctx, actor.Email, res); err != nil {
			zap.L().Warn(
				"failed to send revocation summary",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}

	return res
}
