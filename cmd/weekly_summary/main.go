package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal/bot"
	"github.com/2beens/sporttracker/internal/config"
	"github.com/2beens/sporttracker/internal/db"
	"github.com/2beens/sporttracker/internal/digest"
	"github.com/2beens/sporttracker/internal/logging"
	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/internal/tracker"
	"github.com/2beens/sporttracker/internal/workout"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// stdoutSender prints digest messages instead of sending them
type stdoutSender struct{}

func (stdoutSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		fmt.Printf("----- chat %d -----\n%s\n\n", msg.ChatID, msg.Text)
	}
	return tgbotapi.Message{}, nil
}

func main() {
	if err := run(); err != nil {
		log.Errorf("weekly summary failed: %s", err)
		os.Exit(1)
	}
}

func run() error {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dryRun := flag.Bool("dry-run", false, "print the summaries to stdout instead of sending them")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      "",
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "sporttracker-weekly-summary",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, cfg.DigestTimeout())
	defer timeoutCancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("SPORTTRACKER_DB_PASS"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	var sender messageSender = stdoutSender{}
	if !*dryRun {
		token := os.Getenv("TELEGRAM_BOT_TOKEN")
		if token == "" {
			return errors.New("telegram bot token not set, use TELEGRAM_BOT_TOKEN env var to set it")
		}
		telegram, err := bot.NewTelegramAPI(token, "", 30*time.Second)
		if err != nil {
			return err
		}
		sender = telegram
	}

	broadcaster := digest.NewBroadcaster(digest.NewBroadcasterParams{
		Source: tracker.NewService(tracker.NewServiceParams{
			Repo: workout.NewRepo(dbPool),
		}),
		Sender:         sender,
		MetricsManager: metrics.NewManager("sporttracker", "weekly_summary", metrics.SetupPrometheus()),
		Pace:           cfg.DigestPace(),
	})

	result, err := broadcaster.Broadcast(ctx)
	if result != nil {
		log.Infof("weekly summary: %d users, %d sent, %d failed", result.TotalUsers, result.SuccessCount, result.ErrorCount)
	}

	return err
}
