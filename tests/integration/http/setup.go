package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/cache/redis"
	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/ctrl"
	"github.com/JMURv/device-sessions/internal/geo"
	hdl "github.com/JMURv/device-sessions/internal/hdl/http"
	"github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo/db"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public';
`

var rootDir = filepath.Join("..", "..", "..")

func getRedis() testcontainers.Container {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				"6379/tcp": []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: "6379",
					},
				},
			}
		},
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	zap.L().Info("Redis container is ready")
	return redisC
}

func getPostgres() testcontainers.Container {
	ctx := context.Background()
	pgPort := os.Getenv("POSTGRES_PORT")
	pgPortC := fmt.Sprintf("%s/tcp", pgPort)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.4-alpine",
		WaitingFor:   wait.ForHealthCheck(),
		ExposedPorts: []string{pgPortC},
		ConfigModifier: func(conf *container.Config) {
			conf.Healthcheck = &container.HealthConfig{
				Test:        []string{"CMD-SHELL", fmt.Sprintf("pg_isready -U %s -d %s", os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_DB"))},
				Interval:    5 * time.Second,
				Timeout:     2 * time.Second,
				Retries:     5,
				StartPeriod: 2 * time.Second,
			}
		},
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				nat.Port(pgPortC): []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: pgPort,
					},
				},
			}
		},
		Env: map[string]string{
			"POSTGRES_DB":       os.Getenv("POSTGRES_DB"),
			"POSTGRES_USER":     os.Getenv("POSTGRES_USER"),
			"POSTGRES_PASSWORD": os.Getenv("POSTGRES_PASSWORD"),
			"POSTGRES_HOST":     os.Getenv("POSTGRES_HOST"),
			"POSTGRES_PORT":     os.Getenv("POSTGRES_PORT"),
		},
	}

	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	return pgC
}

func setupTestServer() (*httptest.Server, config.Config, func(t *testing.T)) {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	conf := config.MustLoad(
		filepath.ToSlash(
			filepath.Join(rootDir, "config", ".env.integration"),
		),
	)

	_ = os.Setenv("MIGRATIONS_PATH", filepath.ToSlash(
		filepath.Join(rootDir, "internal", "repo", "db", "migration"),
	))

	redisC := getRedis()
	pgC := getPostgres()

	sessDir, err := os.MkdirTemp("", "sessions")
	if err != nil {
		panic(err)
	}

	store, err := session.NewFileStore(sessDir)
	if err != nil {
		panic(err)
	}

	au := jwt.New(conf.Auth)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(repo, cache, au, auth.NewPassword(), store, geo.Noop{}, auth.NewIdentity(), nil)

	h := hdl.New(au, svc, store)
	h.RegisterRoutes()

	ts := httptest.NewServer(h.Router)

	cleanupFunc := func(t *testing.T) {
		ts.Close()

		conn, err := sql.Open(
			"pgx", fmt.Sprintf(
				"postgres://%s:%s@%s:%d/%s?sslmode=disable",
				conf.DB.User,
				conf.DB.Password,
				conf.DB.Host,
				conf.DB.Port,
				conf.DB.Database,
			),
		)
		if err != nil {
			zap.L().Fatal("Failed to connect to the database", zap.Error(err))
		}

		if err = conn.Ping(); err != nil {
			zap.L().Fatal("Failed to ping the database", zap.Error(err))
		}

		rows, err := conn.Query(getTables)
		if err != nil {
			zap.L().Fatal("Failed to fetch table names", zap.Error(err))
		}
		defer func(rows *sql.Rows) {
			if err := rows.Close(); err != nil {
				zap.L().Debug("Error while closing rows", zap.Error(err))
			}
		}(rows)

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				zap.L().Fatal("Failed to scan table name", zap.Error(err))
			}
			tables = append(tables, name)
		}

		if len(tables) > 0 {
			_, err = conn.Exec(fmt.Sprintf("TRUNCATE TABLE %v RESTART IDENTITY CASCADE;", strings.Join(tables, ", ")))
			if err != nil {
				zap.L().Fatal("Failed to truncate tables", zap.Error(err))
			}
		}

		if err := os.RemoveAll(sessDir); err != nil {
			zap.L().Debug("Failed to remove session dir", zap.Error(err))
		}

		testcontainers.CleanupContainer(t, redisC)
		testcontainers.CleanupContainer(t, pgC)
	}

	return ts, conf, cleanupFunc
}

const insertUser = `
INSERT INTO users (name, email, password, account_type, is_active)
VALUES ($1, $2, $3, $4, TRUE)
RETURNING id;
`

func seedUser(t *testing.T, conf config.Config, email, password, accountType string) uuid.UUID {
	conn, err := sql.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	require.NoError(t, err)
	defer conn.Close()

	hashed, err := auth.NewPassword().Hash(password)
	require.NoError(t, err)

	var id uuid.UUID
	err = conn.QueryRow(insertUser, "Test User", email, hashed, accountType).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedInternalUser(t *testing.T, conf config.Config, email, password string) uuid.UUID {
	return seedUser(t, conf, email, password, models.AccountInternal)
}
