package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal"
	"github.com/2beens/sporttracker/internal/config"
	"github.com/2beens/sporttracker/internal/logging"
	"github.com/2beens/sporttracker/pkg"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	hashAdminToken := flag.String("hash-admin-token", "", "print the hash to use as SPORTTRACKER_ADMIN_TOKEN_HASH for the given token, and exit")
	flag.Parse()

	if *hashAdminToken != "" {
		hash, err := pkg.HashToken(*hashAdminToken, pkg.DefaultTokenHashCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash admin token: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	fmt.Println("starting ...")

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "sporttracker-bot",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("bot mode: [%s]", cfg.BotMode)

	telegramToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if telegramToken == "" {
		log.Fatalln("telegram bot token not set, use TELEGRAM_BOT_TOKEN env var to set it")
	}

	adminIDsRaw := os.Getenv("SPORTTRACKER_ADMIN_USER_IDS")
	if adminIDsRaw == "" {
		adminIDsRaw = os.Getenv("ADMIN_USER_IDS")
	}
	adminIDs, err := config.ParseIDList(adminIDsRaw)
	if err != nil {
		log.Fatalf("invalid admin user ids: %s", err)
	}
	if len(adminIDs) == 0 {
		log.Warnln("no admin users set. use SPORTTRACKER_ADMIN_USER_IDS")
	}

	webhookSecret := os.Getenv("SPORTTRACKER_WEBHOOK_SECRET")
	if webhookSecret == "" && cfg.BotMode == config.BotModeWebhook {
		// the webhook is registered again on every start, a fresh secret works too
		webhookSecret, err = pkg.GenerateRandomString(32)
		if err != nil {
			log.Fatalf("generate webhook secret: %s", err)
		}
		log.Warnln("webhook secret not set, using a random one. use SPORTTRACKER_WEBHOOK_SECRET")
	}

	cronSecret := os.Getenv("SPORTTRACKER_CRON_SECRET")
	if cronSecret == "" {
		log.Errorf("cron secret not set, weekly summary endpoint disabled. use SPORTTRACKER_CRON_SECRET")
	}

	adminTokenHash := os.Getenv("SPORTTRACKER_ADMIN_TOKEN_HASH")
	if adminTokenHash == "" {
		log.Errorf("admin token hash not set, admin stats endpoint disabled. use SPORTTRACKER_ADMIN_TOKEN_HASH")
	}

	redisPassword := os.Getenv("SPORTTRACKER_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use SPORTTRACKER_REDIS_PASS")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			TelegramToken:           telegramToken,
			AdminIDs:                adminIDs,
			WebhookSecret:           webhookSecret,
			CronSecret:              cronSecret,
			AdminTokenHash:          adminTokenHash,
			RedisPassword:           redisPassword,
			DBPassword:              os.Getenv("SPORTTRACKER_DB_PASS"),
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	if err := server.Serve(ctx, cfg.Host, cfg.Port); err != nil {
		log.Errorf("serve: %s", err)
		cancel()
		if shutdownErr := server.GracefulShutdown(); shutdownErr != nil {
			log.Errorf("graceful shutdown: %s", shutdownErr)
		}
		os.Exit(1)
	}

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}
