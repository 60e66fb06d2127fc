package bot

import (
	"context"
	"runtime/debug"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal/telemetry/metrics"
)

const defaultMaxConcurrentUpdates = 16

type updatesSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type updateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Poller receives updates with long polling and handles each one in its own goroutine.
type Poller struct {
	source         updatesSource
	handler        updateHandler
	metrics        *metrics.Manager
	timeoutSeconds int
	sem            chan struct{}
	wg             sync.WaitGroup
}

func NewPoller(source updatesSource, handler updateHandler, metricsManager *metrics.Manager, maxConcurrent int) *Poller {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentUpdates
	}
	return &Poller{
		source:         source,
		handler:        handler,
		metrics:        metricsManager,
		timeoutSeconds: 60,
		sem:            make(chan struct{}, maxConcurrent),
	}
}

// Run blocks until ctx is done or the updates channel is closed, then waits
// for in flight updates to finish.
func (p *Poller) Run(ctx context.Context) {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = p.timeoutSeconds
	updates := p.source.GetUpdatesChan(config)

	log.Println("telegram long polling started")
	defer func() {
		p.source.StopReceivingUpdates()
		p.wg.Wait()
		log.Println("telegram long polling stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			select {
			case p.sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			p.wg.Add(1)
			go func() {
				defer func() {
					<-p.sem
					p.wg.Done()
				}()
				p.handle(ctx, update)
			}()
		}
	}
}

func (p *Poller) handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			p.metrics.CounterHandleRequestPanic.Inc()
			log.Errorf("panic while handling update %d: %v\n%s", update.UpdateID, r, debug.Stack())
		}
	}()
	p.handler.HandleUpdate(ctx, update)
}
