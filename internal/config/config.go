package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"device-sessions"`

	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Geo     GeoConfig
	Session SessionConfig
	Email   EmailConfig
	Jaeger  *JaegerConfig
}

type ServerConfig struct {
	Mode        string `env:"SERVER_MODE" envDefault:"dev"`
	Port        int    `env:"SERVER_PORT" envDefault:"8080"`
	GRPCPort    int    `env:"SERVER_GRPC_PORT" envDefault:"50050"`
	MetricsPort int    `env:"SERVER_METRICS_PORT" envDefault:"8085"`
	Scheme      string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain      string `env:"SERVER_DOMAIN" envDefault:"localhost"`
}

type DBConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Database string `env:"POSTGRES_DB" envDefault:"devices"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `env:"REDIS_PASS" envDefault:""`
}

type AuthConfig struct {
	Secret        string `env:"AUTH_SECRET,required"`
	RefreshSecret string `env:"AUTH_REFRESH_SECRET,required"`
	Issuer        string `env:"AUTH_ISSUER" envDefault:"device-sessions"`
}

type GeoConfig struct {
	// MMDBPath points to a MaxMind City database. Empty disables lookups.
	MMDBPath string `env:"GEO_MMDB_PATH" envDefault:""`
}

type SessionConfig struct {
	// Store selects the session blob backend: "file" or "minio".
	Store string `env:"SESSION_STORE" envDefault:"file"`
	Path  string `env:"SESSION_PATH" envDefault:"/var/lib/device-sessions/sessions"`

	MinioEndpoint  string `env:"SESSION_MINIO_ENDPOINT" envDefault:""`
	MinioAccessKey string `env:"SESSION_MINIO_ACCESS_KEY" envDefault:""`
	MinioSecretKey string `env:"SESSION_MINIO_SECRET_KEY" envDefault:""`
	MinioBucket    string `env:"SESSION_MINIO_BUCKET" envDefault:"sessions"`
	MinioUseSSL    bool   `env:"SESSION_MINIO_SSL" envDefault:"false"`
}

type EmailConfig struct {
	Server string `env:"EMAIL_SERVER" envDefault:""`
	Port   int    `env:"EMAIL_PORT" envDefault:"587"`
	User   string `env:"EMAIL_USER" envDefault:""`
	Pass   string `env:"EMAIL_PASS" envDefault:""`
	Admin  string `env:"EMAIL_ADMIN" envDefault:""`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
		Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `env:"JAEGER_AGENT" envDefault:"localhost:6831"`
	}
}

func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Info("No .env file found, reading environment", zap.String("path", path))
	}

	conf := Config{Jaeger: &JaegerConfig{}}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
