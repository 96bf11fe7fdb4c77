package geo

import (
	"context"
	"net"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

type Info struct {
	Country string
	City    string
}

// Resolver maps an IP to a coarse location. Lookups are best-effort: a
// failure yields a zero Info, never an error to the caller.
type Resolver interface {
	Lookup(ctx context.Context, ip string) Info
	Close() error
}

type MaxMind struct {
	reader *geoip2.Reader
}

func NewMaxMind(conf config.GeoConfig) (*MaxMind, error) {
	reader, err := geoip2.Open(conf.MMDBPath)
	if err != nil {
		return nil, err
	}
	return &MaxMind{reader: reader}, nil
}

func (m *MaxMind) Lookup(_ context.Context, ip string) Info {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		zap.L().Debug("unparseable ip for geo lookup", zap.String("ip", ip))
		return Info{}
	}

	record, err := m.reader.City(parsed)
	if err != nil {
		zap.L().Warn("geo lookup failed", zap.String("ip", ip), zap.Error(err))
		return Info{}
	}

	return Info{
		Country: record.Country.Names["en"],
		City:    record.City.Names["en"],
	}
}

func (m *MaxMind) Close() error {
	return m.reader.Close()
}

// Noop is used when no MaxMind database is configured.
type Noop struct{}

func (Noop) Lookup(context.Context, string) Info { return Info{} }
func (Noop) Close() error                        { return nil }
