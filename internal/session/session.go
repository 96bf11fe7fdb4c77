package session

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
	"go.uber.org/zap"
)

const unknown = "Unknown"

// Trace is the per-session device fingerprint. It lives inside the Session
// itself; nothing is ever patched onto a foreign type.
type Trace struct {
	Platform      string    `json:"platform"`
	Browser       string    `json:"browser"`
	IPAddress     string    `json:"ip_address"`
	FirstActivity time.Time `json:"first_activity"`
	LastActivity  time.Time `json:"last_activity"`
}

func (t Trace) IsZero() bool {
	return t.FirstActivity.IsZero()
}

type Session struct {
	SID   string    `json:"sid"`
	UID   uuid.UUID `json:"uid"`
	Trace Trace     `json:"trace"`
}

func New(sid string, uid uuid.UUID) *Session {
	return &Session{SID: sid, UID: uid}
}

// NewSID mints a fresh opaque session token, long enough that its
// truncated identifier stays collision-resistant.
func NewSID() string {
	b := make([]byte, 48)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// ValidSID reports whether sid looks like a token NewSID mints: at least
// two characters, all from the unpadded base64url alphabet. Anything else
// must never reach a store backend, where the SID becomes a storage key.
func ValidSID(sid string) bool {
	if len(sid) < 2 {
		return false
	}

	for i := 0; i < len(sid); i++ {
		c := sid[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}

	return true
}

// Identifier is the truncated session token used as the device grouping
// key. All log rows of one session share this prefix.
func (s *Session) Identifier() string {
	return Identifier(s.SID)
}

func Identifier(sid string) string {
	if len(sid) > config.SessionIdentifierLength {
		return sid[:config.SessionIdentifierLength]
	}
	return sid
}

// UpdateTrace refreshes the fingerprint from the inbound request metadata.
// The first observation sets every field; later ones overwrite everything
// except FirstActivity. Unreadable metadata is logged and reported as
// "no trace", never as an error.
func (s *Session) UpdateTrace(userAgent, ip string) (Trace, bool) {
	if strings.TrimSpace(userAgent) == "" && strings.TrimSpace(ip) == "" {
		zap.L().Error(
			"failed to update trace: empty request metadata",
			zap.String("sid", s.Identifier()),
		)
		return Trace{}, false
	}

	platform, browser := parseUserAgent(userAgent)

	now := time.Now()
	if s.Trace.IsZero() {
		s.Trace = Trace{
			Platform:      platform,
			Browser:       browser,
			IPAddress:     ip,
			FirstActivity: now,
			LastActivity:  now,
		}
		zap.L().Debug(
			"new trace created",
			zap.String("sid", s.Identifier()),
			zap.String("platform", platform),
			zap.String("browser", browser),
		)
	} else {
		s.Trace.Platform = platform
		s.Trace.Browser = browser
		s.Trace.IPAddress = ip
		s.Trace.LastActivity = now
	}

	return s.Trace, true
}

func parseUserAgent(userAgent string) (platform, browser string) {
	parsed := ua.Parse(userAgent)

	platform = parsed.OS
	if parsed.Device == "iPhone" || parsed.Device == "iPad" {
		platform = parsed.Device
	}
	if platform == "" {
		platform = unknown
	}

	browser = parsed.Name
	if browser == "" || parsed.Bot {
		browser = unknown
	}

	return platform, browser
}
