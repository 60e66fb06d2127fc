package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/sporttracker/internal/api"
	"github.com/2beens/sporttracker/internal/bot"
	"github.com/2beens/sporttracker/internal/config"
	"github.com/2beens/sporttracker/internal/db"
	"github.com/2beens/sporttracker/internal/digest"
	"github.com/2beens/sporttracker/internal/middleware"
	"github.com/2beens/sporttracker/internal/session"
	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/tracker"
	"github.com/2beens/sporttracker/internal/workout"
)

// telegram long polling waits up to 60s, the client must outlive it
const telegramClientTimeout = 90 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config        *config.Config
	webhookSecret string

	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	telegram    *tgbotapi.BotAPI
	rateLimiter middleware.RequestRateLimiter

	botHandler *bot.Handler
	apiHandler *api.Handler
	pollerDone chan struct{}

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	TelegramToken           string
	TelegramAPIEndpoint     string
	AdminIDs                []int64
	WebhookSecret           string
	CronSecret              string
	AdminTokenHash          string
	RedisPassword           string
	DBPassword              string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg.BotMode == config.BotModeWebhook && params.WebhookSecret == "" {
		return nil, errors.New("webhook secret must be set in webhook mode")
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("sporttracker", "bot", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "sporttracker-bot")
	if err != nil {
		return nil, err
	}

	telegram, err := bot.NewTelegramAPI(params.TelegramToken, params.TelegramAPIEndpoint, telegramClientTimeout)
	if err != nil {
		return nil, err
	}

	var sessions session.Store
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		sessions = session.NewMemoryStore(cfg.SessionCacheSizeMB, cfg.SessionTTL())
	default:
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL())
	}
	log.Debugf("using [%s] wizard session store", cfg.SessionStore)

	rateLimiter := redis_rate.NewLimiter(rdb)
	trackerService := tracker.NewService(tracker.NewServiceParams{
		Repo:            workout.NewRepo(dbPool),
		AdminIDs:        params.AdminIDs,
		LeaderboardSize: cfg.LeaderboardSize,
		HistorySize:     cfg.HistorySize,
	})

	botHandler := bot.NewHandler(bot.NewHandlerParams{
		Client:           telegram,
		Tracker:          trackerService,
		Sessions:         sessions,
		RateLimiter:      rateLimiter,
		UpdatesPerMinute: cfg.UserUpdatesPerMin,
		MetricsManager:   metricsManager,
	})

	broadcaster := digest.NewBroadcaster(digest.NewBroadcasterParams{
		Source:         trackerService,
		Sender:         telegram,
		MetricsManager: metricsManager,
		Pace:           cfg.DigestPace(),
	})

	apiParams := api.NewHandlerParams{
		Reporter:             trackerService,
		Digest:               broadcaster,
		WebhookSecret:        params.WebhookSecret,
		AdminTokenHash:       params.AdminTokenHash,
		CronSecret:           params.CronSecret,
		DigestTimeout:        cfg.DigestTimeout(),
		AdminRateLimitPerMin: cfg.AdminRateLimitPerMin,
		CronRateLimitPerMin:  cfg.CronRateLimitPerMin,
	}
	if cfg.BotMode == config.BotModeWebhook {
		apiParams.Updates = botHandler
	}

	return &Server{
		config:        cfg,
		webhookSecret: params.WebhookSecret,

		dbPool:      dbPool,
		redisClient: rdb,
		telegram:    telegram,
		rateLimiter: rateLimiter,

		botHandler: botHandler,
		apiHandler: api.NewHandler(apiParams),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("sporttracker-router"))

	s.apiHandler.SetupRoutes(r, s.rateLimiter, s.metricsManager)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Serve starts the http servers and the telegram updates intake (webhook or long polling).
// Long polling stops when ctx is done.
func (s *Server) Serve(ctx context.Context, host string, port int) error {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if err := bot.RegisterCommands(s.telegram); err != nil {
		log.Errorf("register bot commands: %s", err)
	}

	switch s.config.BotMode {
	case config.BotModeWebhook:
		if err := bot.SetupWebhook(s.telegram, s.config.WebhookPublicURL, s.webhookSecret); err != nil {
			return err
		}
	default:
		if err := bot.DeleteWebhook(s.telegram); err != nil {
			return err
		}
		poller := bot.NewPoller(s.telegram, s.botHandler, s.metricsManager, s.config.MaxConcurrentUpdates)
		s.pollerDone = make(chan struct{})
		go func() {
			defer close(s.pollerDone)
			poller.Run(ctx)
		}()
	}

	s.metricsManager.GaugeLifeSignal.Set(1)

	return nil
}

// GracefulShutdown expects the ctx given to Serve to be done already.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.pollerDone != nil {
		select {
		case <-s.pollerDone:
			log.Debugln("telegram poller stopped")
		case <-ctx.Done():
			shutdownErr = multierr.Append(shutdownErr, errors.New("telegram poller did not stop in time"))
		}
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	return shutdownErr
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
