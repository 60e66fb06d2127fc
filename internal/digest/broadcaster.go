package digest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/2beens/sporttracker/internal/bot"
	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/tracker"
)

var ErrAlreadyRunning = errors.New("weekly digest broadcast already running")

const DefaultPace = 100 * time.Millisecond

//go:generate mockgen -source=$GOFILE -destination=broadcaster_mocks_test.go -package=digest_test

type snapshotSource interface {
	DigestSnapshot(ctx context.Context) (*tracker.DigestSnapshot, error)
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Result struct {
	TotalUsers   int `json:"totalUsers"`
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
}

type NewBroadcasterParams struct {
	Source         snapshotSource
	Sender         messageSender
	MetricsManager *metrics.Manager
	// Pace is the minimum delay between two messages. Zero means DefaultPace, negative disables pacing.
	Pace time.Duration
}

// Broadcaster pushes the weekly summary to every registered user.
type Broadcaster struct {
	source  snapshotSource
	sender  messageSender
	metrics *metrics.Manager
	pace    time.Duration
	running sync.Mutex
}

func NewBroadcaster(params NewBroadcasterParams) *Broadcaster {
	pace := params.Pace
	if pace == 0 {
		pace = DefaultPace
	}
	return &Broadcaster{
		source:  params.Source,
		sender:  params.Sender,
		metrics: params.MetricsManager,
		pace:    pace,
	}
}

func (b *Broadcaster) newLimiter() *rate.Limiter {
	if b.pace < 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(b.pace), 1)
}

// Broadcast sends the digest to all users. A failed delivery is counted and logged,
// and the broadcast goes on with the next user. Only a failed snapshot or a done
// context stop it early, in which case the partial result is returned with the error.
func (b *Broadcaster) Broadcast(ctx context.Context) (_ *Result, err error) {
	if !b.running.TryLock() {
		return nil, ErrAlreadyRunning
	}
	defer b.running.Unlock()

	ctx, span := tracing.GlobalTracer.Start(ctx, "digest.broadcast")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := time.Now()
	defer func() {
		b.metrics.HistDigestDuration.Observe(time.Since(start).Seconds())
	}()

	snapshot, err := b.source.DigestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest snapshot: %w", err)
	}

	result := &Result{TotalUsers: len(snapshot.Users)}
	log.Infof("weekly digest: sending to %d users", result.TotalUsers)

	limiter := b.newLimiter()
	for _, user := range snapshot.Users {
		if err := limiter.Wait(ctx); err != nil {
			return result, fmt.Errorf("weekly digest interrupted after %d users: %w", result.SuccessCount+result.ErrorCount, err)
		}

		summary := snapshot.SummaryFor(user.ID)
		msg := tgbotapi.NewMessage(user.TelegramID, bot.RenderDigest(user.Language, snapshot.Week, summary))
		msg.ReplyMarkup = bot.DigestKeyboard(user.Language)

		if _, err := b.sender.Send(msg); err != nil {
			log.Errorf("weekly digest: send to user %d: %s", user.TelegramID, err)
			result.ErrorCount++
			b.metrics.CounterDigestMessages.WithLabelValues("failed").Inc()
			continue
		}

		result.SuccessCount++
		b.metrics.CounterDigestMessages.WithLabelValues("sent").Inc()
	}

	log.Infof("weekly digest done: %d sent, %d failed", result.SuccessCount, result.ErrorCount)

	return result, nil
}
