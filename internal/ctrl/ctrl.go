package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/geo"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/google/uuid"
)

type AppRepo interface {
	InsertDeviceLog(ctx context.Context, d *md.DeviceLog) (uint64, error)
	DeviceLogExists(ctx context.Context, identifier string, uid uuid.UUID) (bool, error)
	ListCurrentDevices(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	GetCurrentDevice(ctx context.Context, id uint64) (*md.CurrentDevice, error)
	LinkedIPAddresses(ctx context.Context, d *md.DeviceLog) (string, error)
	ActiveIdentifiersForUser(ctx context.Context, uid uuid.UUID) ([]string, error)
	IdentifiersForUser(ctx context.Context, uid uuid.UUID) ([]string, error)
	RevokeByIdentifiers(ctx context.Context, identifiers []string) (int64, error)
	PurgeSuperseded(ctx context.Context) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteDeviceLog(ctx context.Context, id uint64) error
	DeleteLogsForUser(ctx context.Context, uid uuid.UUID) (int64, error)

	GetUserByID(ctx context.Context, uid uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
}

type AppCtrl interface {
	RecordActivity(ctx context.Context, s *session.Session, d *dto.DeviceRequest) error
	ListCurrentDevices(
		ctx context.Context,
		callerSID string,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	LinkedIPAddresses(ctx context.Context, deviceID uint64) (*dto.LinkedIPsResponse, error)
	PurgeStale(ctx context.Context) (int64, error)
	DeleteDeviceLog(ctx context.Context, deviceID uint64) error
	DeleteLogsForUser(ctx context.Context, uid uuid.UUID) (int64, error)

	Revoke(
		ctx context.Context,
		deviceIDs []uint64,
		actor *md.User,
		actorSID string,
	) dto.RevocationResult
	RevokeAllSessionsForUser(
		ctx context.Context,
		uid uuid.UUID,
		actor *md.User,
		actorSID string,
	) dto.RevocationResult
	BulkRevokeForUsers(
		ctx context.Context,
		uids []uuid.UUID,
		actor *md.User,
		actorSID string,
	) dto.BatchResult

	Authenticate(
		ctx context.Context,
		req *dto.EmailAndPasswordRequest,
		d *dto.DeviceRequest,
	) (*dto.TokenPairResponse, *session.Session, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error)

	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// IdentityService re-verifies the acting user before privileged
// operations on other users' sessions.
type IdentityService interface {
	Confirm(ctx context.Context, u *md.User) bool
}

// EmailService delivers operator notifications. Nil-able: bulk flows
// skip the summary when no mailer is wired.
type EmailService interface {
	SendRevocationSummary(ctx context.Context, to string, res dto.BatchResult) error
}

type Controller struct {
	repo     AppRepo
	cache    CacheService
	au       jwt.Port
	pswd     auth.PasswordService
	sessions session.Store
	geo      geo.Resolver
	identity IdentityService
	email    EmailService
}

func New(
	repo AppRepo,
	cache CacheService,
	au jwt.Port,
	pswd auth.PasswordService,
	sessions session.Store,
	geoRes geo.Resolver,
	identity IdentityService,
	email EmailService,
) *Controller {
	return &Controller{
		repo:     repo,
		cache:    cache,
		au:       au,
		pswd:     pswd,
		sessions: sessions,
		geo:      geoRes,
		identity: identity,
		email:    email,
	}
}
