package config

import "time"

type ctxKey string

const (
	UidKey     ctxKey = "uid"
	IpKey      ctxKey = "ip"
	UaKey      ctxKey = "ua"
	SessionKey ctxKey = "sid"
)

const (
	DefaultPage      = 1
	DefaultSize      = 40
	DefaultCacheTime = time.Hour
)

const (
	AccessCookieName     = "access"
	RefreshCookieName    = "refresh"
	SessionCookieName    = "sid"
	AccessTokenDuration  = time.Minute * 30
	RefreshTokenDuration = time.Hour * 24 * 7
)

const (
	// SessionIdentifierLength is the session token prefix stored with every
	// device log row. All rows of one session share this prefix.
	SessionIdentifierLength = 42

	// DeviceLogRetention bounds the coarse sweep: rows older than this are
	// deleted unless they are the newest of their device group.
	DeviceLogRetention = time.Hour * 2

	SweepInterval = time.Minute * 30
)

const ErrorSpanTag = "error"
