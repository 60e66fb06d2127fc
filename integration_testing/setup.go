//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"golang.org/x/crypto/bcrypt"

	"github.com/2beens/sporttracker/internal"
	"github.com/2beens/sporttracker/internal/config"
	testingpkg "github.com/2beens/sporttracker/pkg/testing"
)

const (
	serverPort  = 9000
	serverHost  = "localhost"
	metricsPort = "9001"

	schemaPath = "../db/migrations/0001_init.sql"

	webhookSecret = "integration-webhook-secret"
	cronSecret    = "integration-cron-secret"
	adminToken    = "integration-admin-token"
	dbPassword    = "postgres"
)

var (
	serverEndpoint  = fmt.Sprintf("http://%s:%d", serverHost, serverPort)
	metricsEndpoint = fmt.Sprintf("http://%s:%s/metrics", serverHost, metricsPort)
)

type Env struct {
	DB       *sql.DB
	Telegram *testingpkg.FakeTelegram

	dockerPool *dockertest.Pool
	server     *internal.Server
	cancel     context.CancelFunc
	teardown   []func()
}

func newEnv(t *testing.T) *Env {
	var err error
	env := &Env{
		Telegram: testingpkg.NewFakeTelegram(t),
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	env.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = env.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := env.redisSetup()
	if err != nil {
		env.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := env.postgresSetup()
	if err != nil {
		env.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg, err := getTestConfig(redisPort, pgPort)
	if err != nil {
		env.cleanup()
		log.Fatalf("test config: %s", err)
	}

	adminTokenHash, err := bcrypt.GenerateFromPassword([]byte(adminToken), bcrypt.MinCost)
	if err != nil {
		env.cleanup()
		log.Fatalf("hash admin token: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	env.cancel = cancel
	env.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			TelegramToken:           testingpkg.FakeTelegramToken,
			TelegramAPIEndpoint:     env.Telegram.Endpoint(),
			AdminIDs:                []int64{adminTelegramID},
			WebhookSecret:           webhookSecret,
			CronSecret:              cronSecret,
			AdminTokenHash:          string(adminTokenHash),
			RedisPassword:           "",
			DBPassword:              dbPassword,
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		env.cleanup()
		log.Fatalf("new server: %s", err)
	}

	if err := env.server.Serve(ctx, cfg.Host, cfg.Port); err != nil {
		env.cleanup()
		log.Fatalf("serve: %s", err)
	}

	return env
}

func (e *Env) cleanup() {
	if e.cancel != nil {
		e.cancel()
	}
	if e.server != nil {
		if err := e.server.GracefulShutdown(); err != nil {
			log.Printf("graceful shutdown: %s", err)
		}
	}
	if e.DB != nil {
		e.DB.Close()
	}
	for _, teardown := range e.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) (*config.Config, error) {
	t := config.Toml{
		Development: &config.Config{
			Host:                  serverHost,
			Port:                  serverPort,
			Environment:           "development",
			LogLevel:              "debug",
			LogToStdout:           true,
			RedisHost:             "localhost",
			RedisPort:             redisPort,
			PostgresPort:          postgresPort,
			PostgresHost:          "localhost",
			PostgresDBName:        "sporttracker",
			PostgresUser:          "postgres",
			PrometheusMetricsHost: serverHost,
			PrometheusMetricsPort: metricsPort,
			BotMode:               config.BotModeWebhook,
			WebhookPublicURL:      "https://bot.example.com",
			SessionStore:          config.SessionStoreRedis,
			DigestPaceMillis:      10,
		},
	}
	return t.Get("development")
}

func (e *Env) redisSetup() (string, error) {
	redisResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "sporttracker-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	e.teardown = append(e.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (e *Env) postgresSetup() (string, error) {
	pgResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=sporttracker",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	e.teardown = append(e.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:%s@localhost:%s/sporttracker?sslmode=disable", dbPassword, pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	e.DB = db

	// postgres needs a moment before accepting connections
	if err := e.dockerPool.Retry(db.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return "", fmt.Errorf("read schema: %s", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	return pgPort, nil
}
