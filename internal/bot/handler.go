package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v9"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal/i18n"
	"github.com/2beens/sporttracker/internal/session"
	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/tracker"
	"github.com/2beens/sporttracker/internal/workout"
)

const rateLimitKeyPrefix = "sporttracker-update||"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bot_test

type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type trackerService interface {
	EnsureUser(ctx context.Context, telegramID int64, name, languageCode string) (*workout.User, bool, error)
	SetLanguage(ctx context.Context, user *workout.User, lang workout.Language) error
	LogWorkout(ctx context.Context, userID uuid.UUID, category workout.Category, duration int) (*workout.Workout, error)
	History(ctx context.Context, userID uuid.UUID) ([]workout.Workout, error)
	WeeklyStats(ctx context.Context, userID uuid.UUID) (*tracker.WeeklyStats, error)
	Leaderboard(ctx context.Context, focus uuid.UUID) (*tracker.Leaderboard, error)
	AdminReportFor(ctx context.Context, telegramID int64) (*tracker.AdminReport, error)
}

type updateRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type NewHandlerParams struct {
	Client   telegramClient
	Tracker  trackerService
	Sessions session.Store
	// RateLimiter is optional; updates are not limited when nil.
	RateLimiter       updateRateLimiter
	UpdatesPerMinute  int
	MetricsManager    *metrics.Manager
	OperationsTimeout time.Duration
}

// Handler turns telegram updates (messages and button presses) into tracker calls
// and answers with rendered, localized messages.
type Handler struct {
	client            telegramClient
	tracker           trackerService
	sessions          session.Store
	rateLimiter       updateRateLimiter
	updatesPerMinute  int
	metrics           *metrics.Manager
	operationsTimeout time.Duration
}

func NewHandler(params NewHandlerParams) *Handler {
	h := &Handler{
		client:            params.Client,
		tracker:           params.Tracker,
		sessions:          params.Sessions,
		rateLimiter:       params.RateLimiter,
		updatesPerMinute:  params.UpdatesPerMinute,
		metrics:           params.MetricsManager,
		operationsTimeout: params.OperationsTimeout,
	}
	if h.updatesPerMinute <= 0 {
		h.updatesPerMinute = 30
	}
	if h.operationsTimeout <= 0 {
		h.operationsTimeout = 20 * time.Second
	}
	return h
}

// reply target: messages coming from a button press are edited in place,
// everything else gets a new message
type target struct {
	chatID    int64
	messageID int
}

func updateKind(update tgbotapi.Update) string {
	switch {
	case update.CallbackQuery != nil:
		return "callback"
	case update.Message != nil && update.Message.IsCommand():
		return "command"
	case update.Message != nil:
		return "message"
	default:
		return "other"
	}
}

// HandleUpdate processes a single update. Errors are logged and answered with a
// generic error message, they never propagate to the update loop.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	kind := updateKind(update)
	if kind == "other" {
		log.Tracef("ignoring update %d", update.UpdateID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.operationsTimeout)
	defer cancel()

	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.handleUpdate")
	defer span.End()

	start := time.Now()
	defer func() {
		h.metrics.HistogramUpdateDuration.Observe(time.Since(start).Seconds())
	}()
	h.metrics.CounterUpdates.WithLabelValues(kind).Inc()

	var from *tgbotapi.User
	var t target
	if cq := update.CallbackQuery; cq != nil {
		from = cq.From
		if cq.Message != nil {
			t = target{chatID: cq.Message.Chat.ID, messageID: cq.Message.MessageID}
		}
		if _, err := h.client.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			log.Warnf("answer callback query %s: %s", cq.ID, err)
		}
	} else {
		from = update.Message.From
		t = target{chatID: update.Message.Chat.ID}
	}
	if from == nil || t.chatID == 0 {
		return
	}

	if !h.allowed(ctx, from.ID) {
		h.metrics.CounterRateLimitedUpdates.Inc()
		if err := h.send(t.chatID, i18n.T(workout.LanguageOrDefault(from.LanguageCode), "error.rateLimit"), noKeyboard); err != nil {
			log.Errorf("notify rate limited user %d: %s", from.ID, err)
		}
		return
	}

	user, _, err := h.tracker.EnsureUser(ctx, from.ID, workout.PickName(from.UserName, from.FirstName, from.LastName), from.LanguageCode)
	if err != nil {
		h.fail(t, workout.LanguageOrDefault(from.LanguageCode), fmt.Errorf("ensure user %d: %w", from.ID, err))
		return
	}

	if update.CallbackQuery != nil {
		err = h.handleCallback(ctx, user, t, update.CallbackQuery.Data)
	} else {
		err = h.handleMessage(ctx, user, t, update.Message)
	}
	if err != nil {
		h.fail(t, user.Language, err)
	}
}

func (h *Handler) allowed(ctx context.Context, telegramID int64) bool {
	if h.rateLimiter == nil {
		return true
	}
	res, err := h.rateLimiter.Allow(ctx, rateLimitKeyPrefix+strconv.FormatInt(telegramID, 10), redis_rate.PerMinute(h.updatesPerMinute))
	if err != nil {
		// do not lock users out when redis is unavailable
		log.Errorf("update rate limiter: %s", err)
		return true
	}
	return res.Allowed > 0
}

func (h *Handler) fail(t target, lang workout.Language, err error) {
	log.Errorf("handle update for chat %d: %s", t.chatID, err)
	h.metrics.CounterUpdateErrors.Inc()
	if err := h.send(t.chatID, i18n.T(lang, "error.generic"), homeKeyboard(lang)); err != nil {
		log.Errorf("send error message to chat %d: %s", t.chatID, err)
	}
}

func (h *Handler) handleMessage(ctx context.Context, user *workout.User, t target, msg *tgbotapi.Message) error {
	lang := user.Language

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			if err := h.sessions.Clear(ctx, user.TelegramID); err != nil {
				log.Warnf("clear session for %d: %s", user.TelegramID, err)
			}
			return h.reply(t, RenderWelcome(lang, user.DisplayName()), mainMenuKeyboard(lang))
		case "help":
			return h.reply(t, i18n.T(lang, "help.text"), homeKeyboard(lang))
		case "stats":
			return h.showStats(ctx, user, t)
		case "history":
			return h.showHistory(ctx, user, t)
		case "leaderboard":
			return h.showLeaderboard(ctx, user, t)
		case "admin":
			return h.showAdminReport(ctx, user, t)
		case "language":
			return h.reply(t, i18n.T(lang, "language.select"), languageKeyboard(lang))
		default:
			return h.reply(t, i18n.T(lang, "unknown.command"), mainMenuKeyboard(lang))
		}
	}

	state, err := h.sessions.Get(ctx, user.TelegramID)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return fmt.Errorf("get session: %w", err)
	}
	if state == nil || state.Step != session.StepCustomDuration {
		return h.reply(t, i18n.T(lang, "unknown.text"), mainMenuKeyboard(lang))
	}

	duration, err := workout.ParseDuration(msg.Text)
	if err != nil {
		log.Debugf("invalid custom duration from %d: %s", user.TelegramID, err)
		return h.reply(t, i18n.T(lang, "workout.invalidDuration"), cancelKeyboard(lang))
	}

	return h.logWorkout(ctx, user, t, state.WorkoutType, duration)
}

func (h *Handler) handleCallback(ctx context.Context, user *workout.User, t target, data string) error {
	lang := user.Language

	switch {
	case data == cbHome:
		if err := h.sessions.Clear(ctx, user.TelegramID); err != nil {
			log.Warnf("clear session for %d: %s", user.TelegramID, err)
		}
		return h.reply(t, i18n.T(lang, "home.title"), mainMenuKeyboard(lang))
	case data == cbAddWorkout:
		if err := h.sessions.Set(ctx, user.TelegramID, session.State{
			Step:      session.StepSelectType,
			UpdatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return h.reply(t, i18n.T(lang, "workout.chooseType"), workoutTypeKeyboard(lang))
	case strings.HasPrefix(data, cbWorkoutTypePrefix):
		category, err := workout.ParseCategory(strings.TrimPrefix(data, cbWorkoutTypePrefix))
		if err != nil {
			return err
		}
		if err := h.sessions.Set(ctx, user.TelegramID, session.State{
			Step:        session.StepSelectDuration,
			WorkoutType: category,
			UpdatedAt:   time.Now(),
		}); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return h.reply(t, i18n.T(lang, "workout.howLong", category.Emoji(), i18n.Category(lang, category)), durationKeyboard(lang))
	case data == cbDurationCustom:
		state, ok, err := h.wizardState(ctx, user, t)
		if !ok || err != nil {
			return err
		}
		state.Step = session.StepCustomDuration
		state.UpdatedAt = time.Now()
		if err := h.sessions.Set(ctx, user.TelegramID, *state); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return h.reply(t, i18n.T(lang, "workout.enterDuration"), cancelKeyboard(lang))
	case strings.HasPrefix(data, cbDurationPrefix):
		duration, err := workout.ParseDuration(strings.TrimPrefix(data, cbDurationPrefix))
		if err != nil {
			return err
		}
		state, ok, err := h.wizardState(ctx, user, t)
		if !ok || err != nil {
			return err
		}
		return h.logWorkout(ctx, user, t, state.WorkoutType, duration)
	case data == cbMyStats:
		return h.showStats(ctx, user, t)
	case data == cbViewHistory:
		return h.showHistory(ctx, user, t)
	case data == cbLeaderboard:
		return h.showLeaderboard(ctx, user, t)
	case data == cbLanguage:
		return h.reply(t, i18n.T(lang, "language.select"), languageKeyboard(lang))
	case strings.HasPrefix(data, cbLanguagePrefix):
		newLang, err := workout.ParseLanguage(strings.TrimPrefix(data, cbLanguagePrefix))
		if err != nil {
			return err
		}
		if err := h.tracker.SetLanguage(ctx, user, newLang); err != nil {
			return fmt.Errorf("set language: %w", err)
		}
		return h.reply(t, i18n.T(newLang, "language.changed"), mainMenuKeyboard(newLang))
	default:
		log.Warnf("unknown callback data from %d: %q", user.TelegramID, data)
		return nil
	}
}

// wizardState loads the wizard state of a user that is past the type selection.
// When the state is gone the user is told so, and ok is false.
func (h *Handler) wizardState(ctx context.Context, user *workout.User, t target) (_ *session.State, ok bool, _ error) {
	state, err := h.sessions.Get(ctx, user.TelegramID)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return nil, false, fmt.Errorf("get session: %w", err)
	}
	if state == nil || !state.WorkoutType.Valid() {
		return nil, false, h.reply(t, i18n.T(user.Language, "workout.sessionExpired"), retryKeyboard(user.Language))
	}
	return state, true, nil
}

func (h *Handler) logWorkout(ctx context.Context, user *workout.User, t target, category workout.Category, duration int) error {
	added, err := h.tracker.LogWorkout(ctx, user.ID, category, duration)
	if err != nil {
		if errors.Is(err, workout.ErrInvalidDuration) {
			return h.reply(t, i18n.T(user.Language, "workout.invalidDuration"), cancelKeyboard(user.Language))
		}
		return fmt.Errorf("log workout: %w", err)
	}

	if err := h.sessions.Clear(ctx, user.TelegramID); err != nil {
		log.Warnf("clear session for %d: %s", user.TelegramID, err)
	}
	h.metrics.CounterWorkoutsLogged.WithLabelValues(string(added.Type)).Inc()
	log.Debugf("workout logged: user %d, %s, %d min", user.TelegramID, added.Type, added.Duration)

	return h.reply(t, RenderWorkoutLogged(user.Language, added), workoutLoggedKeyboard(user.Language))
}

func (h *Handler) showStats(ctx context.Context, user *workout.User, t target) error {
	weekly, err := h.tracker.WeeklyStats(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("weekly stats: %w", err)
	}
	return h.reply(t, RenderWeeklyStats(user.Language, weekly), statsKeyboard(user.Language))
}

func (h *Handler) showHistory(ctx context.Context, user *workout.User, t target) error {
	history, err := h.tracker.History(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return h.reply(t, RenderHistory(user.Language, history), statsKeyboard(user.Language))
}

func (h *Handler) showLeaderboard(ctx context.Context, user *workout.User, t target) error {
	board, err := h.tracker.Leaderboard(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	return h.reply(t, RenderLeaderboard(user.Language, board, user.ID), leaderboardKeyboard(user.Language))
}

func (h *Handler) showAdminReport(ctx context.Context, user *workout.User, t target) error {
	report, err := h.tracker.AdminReportFor(ctx, user.TelegramID)
	if err != nil {
		if errors.Is(err, tracker.ErrNotAdmin) {
			log.Warnf("non admin user %d requested the admin report", user.TelegramID)
			return h.reply(t, i18n.T(user.Language, "admin.accessDenied"), noKeyboard)
		}
		return fmt.Errorf("admin report: %w", err)
	}
	return h.reply(t, RenderAdminReport(user.Language, report), homeKeyboard(user.Language))
}

var noKeyboard = tgbotapi.InlineKeyboardMarkup{}

func (h *Handler) reply(t target, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if t.messageID == 0 {
		return h.send(t.chatID, text, markup)
	}

	var edit tgbotapi.EditMessageTextConfig
	if len(markup.InlineKeyboard) > 0 {
		edit = tgbotapi.NewEditMessageTextAndMarkup(t.chatID, t.messageID, text, markup)
	} else {
		edit = tgbotapi.NewEditMessageText(t.chatID, t.messageID, text)
	}
	if _, err := h.client.Send(edit); err != nil {
		if isMessageNotModified(err) {
			log.Tracef("message %d in chat %d already up to date", t.messageID, t.chatID)
			return nil
		}
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

// isMessageNotModified reports whether telegram refused an edit because the
// text and markup are the same as the current ones, e.g. on a repeated tap.
func isMessageNotModified(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Message, "message is not modified")
}

func (h *Handler) send(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(markup.InlineKeyboard) > 0 {
		msg.ReplyMarkup = markup
	}
	if _, err := h.client.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
