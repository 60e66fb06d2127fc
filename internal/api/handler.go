package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/sporttracker/internal/bot"
	"github.com/2beens/sporttracker/internal/digest"
	"github.com/2beens/sporttracker/internal/middleware"
	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/tracker"
	"github.com/2beens/sporttracker/internal/workout"
	"github.com/2beens/sporttracker/pkg"
)

const (
	defaultDigestTimeout        = 30 * time.Minute
	defaultAdminRateLimitPerMin = 30
	defaultCronRateLimitPerMin  = 2
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=api_test

type updateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

type adminReporter interface {
	AdminReport(ctx context.Context) (*tracker.AdminReport, error)
}

type digestBroadcaster interface {
	Broadcast(ctx context.Context) (*digest.Result, error)
}

type NewHandlerParams struct {
	Updates       updateHandler
	Reporter      adminReporter
	Digest        digestBroadcaster
	WebhookSecret string
	// bcrypt hash of the admin API bearer token
	AdminTokenHash       string
	CronSecret           string
	DigestTimeout        time.Duration
	AdminRateLimitPerMin int
	CronRateLimitPerMin  int
	Now                  func() time.Time
}

type Handler struct {
	updates              updateHandler
	reporter             adminReporter
	digest               digestBroadcaster
	webhookSecret        string
	adminTokenHash       string
	cronSecret           string
	digestTimeout        time.Duration
	adminRateLimitPerMin int
	cronRateLimitPerMin  int
	now                  func() time.Time
}

func NewHandler(params NewHandlerParams) *Handler {
	h := &Handler{
		updates:              params.Updates,
		reporter:             params.Reporter,
		digest:               params.Digest,
		webhookSecret:        params.WebhookSecret,
		adminTokenHash:       params.AdminTokenHash,
		cronSecret:           params.CronSecret,
		digestTimeout:        params.DigestTimeout,
		adminRateLimitPerMin: params.AdminRateLimitPerMin,
		cronRateLimitPerMin:  params.CronRateLimitPerMin,
		now:                  params.Now,
	}
	if h.digestTimeout <= 0 {
		h.digestTimeout = defaultDigestTimeout
	}
	if h.adminRateLimitPerMin <= 0 {
		h.adminRateLimitPerMin = defaultAdminRateLimitPerMin
	}
	if h.cronRateLimitPerMin <= 0 {
		h.cronRateLimitPerMin = defaultCronRateLimitPerMin
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/health", h.handleHealth).Methods("GET").Name("health")

	// the webhook is not registered in polling mode
	if h.updates != nil {
		mainRouter.
			HandleFunc("/telegram/webhook/{secret}", h.handleWebhook).
			Methods("POST").Name("telegram-webhook")
	}

	adminRouter := mainRouter.PathPrefix("/admin").Subrouter()
	adminRouter.HandleFunc("/stats", h.handleAdminStats).Methods("GET", "OPTIONS").Name("admin-stats")
	adminRouter.Use(middleware.RateLimit(rateLimiter, "admin", h.adminRateLimitPerMin, metricsManager))
	adminRouter.Use(middleware.BearerTokenAuth(h.adminTokenHash))

	cronRouter := mainRouter.PathPrefix("/cron").Subrouter()
	cronRouter.HandleFunc("/weekly-summary", h.handleWeeklySummary).Methods("POST").Name("cron-weekly-summary")
	cronRouter.Use(middleware.SharedSecret(middleware.CronSecretHeader, h.cronSecret))
	cronRouter.Use(middleware.RateLimit(rateLimiter, "cron", h.cronRateLimitPerMin, metricsManager))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "apiHandler.webhook")
	defer span.End()

	secret := mux.Vars(r)["secret"]
	if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		log.Warnf("telegram webhook: wrong secret from %s", pkg.ReadUserIP(r))
		span.SetStatus(codes.Error, "wrong-webhook-secret")
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("telegram webhook: decode update: %s", err)
		span.SetStatus(codes.Error, "decode-update")
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.Int("update.id", update.UpdateID))

	// telegram may drop the connection before the update is fully handled
	h.updates.HandleUpdate(context.WithoutCancel(ctx), update)

	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

type adminStatsResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message,omitempty"`
	Stats     *tracker.AdminReport `json:"stats,omitempty"`
	Timestamp string               `json:"timestamp,omitempty"`
	Error     string               `json:"error,omitempty"`
}

func (h *Handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "apiHandler.adminStats")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	report, err := h.reporter.AdminReport(ctx)
	if err != nil {
		log.Errorf("admin stats: %s", err)
		span.SetStatus(codes.Error, err.Error())
		pkg.WriteJSON(w, http.StatusInternalServerError, adminStatsResponse{
			Error: "Failed to fetch admin statistics",
		})
		return
	}

	pkg.WriteJSON(w, http.StatusOK, adminStatsResponse{
		Success:   true,
		Message:   bot.RenderAdminReport(workout.LanguageEnglish, report),
		Stats:     report,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

type weeklySummaryResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Stats   *digest.Result `json:"stats,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func (h *Handler) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "apiHandler.weeklySummary")
	defer span.End()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.digestTimeout)
	defer cancel()

	log.Info("weekly summary triggered by cron")
	result, err := h.digest.Broadcast(ctx)
	switch {
	case errors.Is(err, digest.ErrAlreadyRunning):
		span.SetStatus(codes.Error, "already-running")
		pkg.WriteJSON(w, http.StatusConflict, weeklySummaryResponse{
			Error: "Weekly summary is already being sent",
		})
		return
	case err != nil:
		log.Errorf("weekly summary: %s", err)
		span.SetStatus(codes.Error, err.Error())
		pkg.WriteJSON(w, http.StatusInternalServerError, weeklySummaryResponse{
			Stats: result,
			Error: "Failed to send weekly summaries",
		})
		return
	}

	span.SetAttributes(
		attribute.Int("digest.total", result.TotalUsers),
		attribute.Int("digest.failed", result.ErrorCount),
	)
	pkg.WriteJSON(w, http.StatusOK, weeklySummaryResponse{
		Success: true,
		Message: "Weekly summaries sent",
		Stats:   result,
	})
}
