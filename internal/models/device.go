package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DeviceComputer = "computer"
	DeviceMobile   = "mobile"
)

// mobilePlatforms is the static platform classification list. Anything else
// counts as a computer.
var mobilePlatforms = map[string]struct{}{
	"android":       {},
	"iphone":        {},
	"ipad":          {},
	"ipod":          {},
	"blackberry":    {},
	"windows phone": {},
	"webos":         {},
}

func DeviceTypeOf(platform string) string {
	if _, ok := mobilePlatforms[strings.ToLower(platform)]; ok {
		return DeviceMobile
	}
	return DeviceComputer
}

// DeviceLog is one persisted observation of a session's platform, browser
// and IP. Rows are append-only; the only mutation ever applied is flipping
// Revoked.
type DeviceLog struct {
	ID                uint64    `db:"id"                 json:"id"`
	SessionIdentifier string    `db:"session_identifier" json:"sessionIdentifier"`
	Platform          string    `db:"platform"           json:"platform"`
	Browser           string    `db:"browser"            json:"browser"`
	IPAddress         string    `db:"ip_address"         json:"ipAddress"`
	Country           *string   `db:"country"            json:"country,omitempty"`
	City              *string   `db:"city"               json:"city,omitempty"`
	DeviceType        string    `db:"device_type"        json:"deviceType"`
	UserID            uuid.UUID `db:"user_id"            json:"userId"`
	FirstActivity     time.Time `db:"first_activity"     json:"firstActivity"`
	LastActivity      time.Time `db:"last_activity"      json:"lastActivity"`
	Revoked           bool      `db:"revoked"            json:"revoked"`
}

func title(s string) string {
	if s == "" {
		return "Unknown"
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// DisplayName is the human label device listings show, "Platform Browser"
// with unknown parts spelled out.
func (d *DeviceLog) DisplayName() string {
	return title(d.Platform) + " " + title(d.Browser)
}

// CurrentDevice is the newest non-revoked DeviceLog per
// (user, session identifier, platform, browser) group. It has no storage of
// its own.
type CurrentDevice struct {
	DeviceLog
	DisplayName string `db:"-" json:"displayName"`
	IsCurrent   bool   `db:"is_current" json:"isCurrent"`
}
