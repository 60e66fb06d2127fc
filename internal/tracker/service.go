package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal/stats"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/workout"
	"github.com/2beens/sporttracker/pkg"
)

var ErrNotAdmin = errors.New("not an admin")

const (
	DefaultLeaderboardSize = 10
	DefaultHistorySize     = 5
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type repository interface {
	CreateUser(ctx context.Context, user workout.User) (*workout.User, error)
	FindUserByTelegramID(ctx context.Context, telegramID int64) (*workout.User, error)
	UpdateUserName(ctx context.Context, id uuid.UUID, name string, updatedAt time.Time) error
	UpdateUserLanguage(ctx context.Context, id uuid.UUID, lang workout.Language, updatedAt time.Time) error
	AddWorkout(ctx context.Context, w workout.Workout) (*workout.Workout, error)
	RecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]workout.Workout, error)
	FindWorkouts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]workout.Workout, error)
	FindAllUsersWithWorkouts(ctx context.Context, start, end time.Time) ([]workout.UserWorkouts, error)
	CountUsers(ctx context.Context) (int, error)
	CountWorkouts(ctx context.Context) (int, error)
	CountUsersWithWorkoutsInRange(ctx context.Context, start, end time.Time) (int, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error)
	AverageWorkoutDuration(ctx context.Context) (float64, error)
	MostPopularCategory(ctx context.Context) (*workout.Category, error)
}

type NewServiceParams struct {
	Repo            repository
	AdminIDs        []int64
	LeaderboardSize int
	HistorySize     int
	// Now defaults to time.Now, the host local clock.
	Now func() time.Time
}

// Service is where the weekly aggregations meet the store: every user facing number
// (personal stats, leaderboard, admin report and the weekly digest) is produced here.
type Service struct {
	repo            repository
	adminIDs        map[int64]struct{}
	leaderboardSize int
	historySize     int
	now             func() time.Time
}

func NewService(params NewServiceParams) *Service {
	adminIDs := make(map[int64]struct{}, len(params.AdminIDs))
	for _, id := range params.AdminIDs {
		adminIDs[id] = struct{}{}
	}

	s := &Service{
		repo:            params.Repo,
		adminIDs:        adminIDs,
		leaderboardSize: params.LeaderboardSize,
		historySize:     params.HistorySize,
		now:             params.Now,
	}
	if s.leaderboardSize <= 0 {
		s.leaderboardSize = DefaultLeaderboardSize
	}
	if s.historySize <= 0 {
		s.historySize = DefaultHistorySize
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s
}

func (s *Service) IsAdmin(telegramID int64) bool {
	_, ok := s.adminIDs[telegramID]
	return ok
}

// EnsureUser returns the user behind a telegram id, registering it on first contact.
// The stored name follows the chat profile. created is true only for a newly registered user.
func (s *Service) EnsureUser(ctx context.Context, telegramID int64, name, languageCode string) (_ *workout.User, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.ensureUser")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.repo.FindUserByTelegramID(ctx, telegramID)
	if err == nil {
		if name != "" && name != user.Name {
			now := s.now()
			if err := s.repo.UpdateUserName(ctx, user.ID, name, now); err != nil {
				return nil, false, fmt.Errorf("update user name: %w", err)
			}
			user.Name = name
			user.UpdatedAt = now
		}
		return user, false, nil
	}
	if !errors.Is(err, workout.ErrUserNotFound) {
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	now := s.now()
	user, err = s.repo.CreateUser(ctx, workout.User{
		TelegramID: telegramID,
		Name:       name,
		Language:   workout.LanguageOrDefault(languageCode),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if !pkg.IsUniqueViolationError(err) {
			return nil, false, fmt.Errorf("create user: %w", err)
		}
		// registered concurrently by another update
		log.Debugf("user %d already registered, reloading", telegramID)
		user, err = s.repo.FindUserByTelegramID(ctx, telegramID)
		if err != nil {
			return nil, false, fmt.Errorf("reload user: %w", err)
		}
		return user, false, nil
	}

	log.Infof("new user registered: %d [%s]", telegramID, user.Name)

	return user, true, nil
}

func (s *Service) SetLanguage(ctx context.Context, user *workout.User, lang workout.Language) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.setLanguage")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := workout.ParseLanguage(string(lang)); err != nil {
		return err
	}

	now := s.now()
	if err := s.repo.UpdateUserLanguage(ctx, user.ID, lang, now); err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	user.Language = lang
	user.UpdatedAt = now

	return nil
}

func (s *Service) LogWorkout(ctx context.Context, userID uuid.UUID, category workout.Category, duration int) (_ *workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.logWorkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := workout.NewWorkout(userID, category, duration, s.now())
	if err != nil {
		return nil, err
	}

	added, err := s.repo.AddWorkout(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	return added, nil
}

// History returns the most recent workouts of the user, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) (_ []workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := s.repo.RecentWorkouts(ctx, userID, s.historySize)
	if err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}

	return workouts, nil
}

type WeeklyStats struct {
	Week         stats.Window     `json:"week"`
	PreviousWeek stats.Window     `json:"previousWeek"`
	Current      stats.Aggregate  `json:"current"`
	Previous     stats.Aggregate  `json:"previous"`
	Comparison   stats.Comparison `json:"comparison"`
}

func (s *Service) WeeklyStats(ctx context.Context, userID uuid.UUID) (_ *WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.weeklyStats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	week := stats.CurrentWeek(s.now())
	prevWeek := week.Previous()

	// both windows are adjacent, so one range query covers them
	records, err := s.repo.FindWorkouts(ctx, userID, prevWeek.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}

	current := stats.AggregateWindow(records, week)
	previous := stats.AggregateWindow(records, prevWeek)

	return &WeeklyStats{
		Week:         week,
		PreviousWeek: prevWeek,
		Current:      current,
		Previous:     previous,
		Comparison:   stats.Compare(current, previous),
	}, nil
}

type Leaderboard struct {
	Week  stats.Window      `json:"week"`
	Board stats.Leaderboard `json:"board"`
}

// Leaderboard ranks all users over the current week, with focus on the given user.
func (s *Service) Leaderboard(ctx context.Context, focus uuid.UUID) (_ *Leaderboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.leaderboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	week := stats.CurrentWeek(s.now())
	users, err := s.repo.FindAllUsersWithWorkouts(ctx, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("find users with workouts: %w", err)
	}

	return &Leaderboard{
		Week:  week,
		Board: stats.Rank(stats.AggregateByUser(users, week), s.leaderboardSize, &focus),
	}, nil
}

type AdminReport struct {
	TotalUsers            int                   `json:"totalUsers"`
	TotalWorkouts         int                   `json:"totalWorkouts"`
	ActiveUsersThisWeek   int                   `json:"activeUsersThisWeek"`
	ActiveUsersLastWeek   int                   `json:"activeUsersLastWeek"`
	RecentRegistrations   int                   `json:"recentRegistrations"`
	AvgWorkoutsPerUser    float64               `json:"averageWorkoutsPerUser"`
	AvgDurationPerWorkout float64               `json:"averageDurationPerWorkout"`
	MostPopularCategory   *workout.Category     `json:"mostPopularWorkoutType,omitempty"`
	Engagement            stats.EngagementRates `json:"engagement"`
}

// AdminReportFor builds the admin report if the telegram user is an admin.
func (s *Service) AdminReportFor(ctx context.Context, telegramID int64) (*AdminReport, error) {
	if !s.IsAdmin(telegramID) {
		return nil, ErrNotAdmin
	}
	return s.AdminReport(ctx)
}

func (s *Service) AdminReport(ctx context.Context) (_ *AdminReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.adminReport")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := s.now()
	week := stats.CurrentWeek(now)
	prevWeek := week.Previous()

	report := &AdminReport{}
	if report.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if report.TotalWorkouts, err = s.repo.CountWorkouts(ctx); err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}
	if report.ActiveUsersThisWeek, err = s.repo.CountUsersWithWorkoutsInRange(ctx, week.Start, week.End); err != nil {
		return nil, fmt.Errorf("count active users this week: %w", err)
	}
	if report.ActiveUsersLastWeek, err = s.repo.CountUsersWithWorkoutsInRange(ctx, prevWeek.Start, prevWeek.End); err != nil {
		return nil, fmt.Errorf("count active users last week: %w", err)
	}
	if report.RecentRegistrations, err = s.repo.CountUsersCreatedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, fmt.Errorf("count recent registrations: %w", err)
	}
	if report.AvgDurationPerWorkout, err = s.repo.AverageWorkoutDuration(ctx); err != nil {
		return nil, fmt.Errorf("average duration: %w", err)
	}
	if report.MostPopularCategory, err = s.repo.MostPopularCategory(ctx); err != nil {
		return nil, fmt.Errorf("most popular category: %w", err)
	}

	report.AvgWorkoutsPerUser = stats.Ratio(report.TotalWorkouts, report.TotalUsers)
	report.Engagement = stats.Engagement(report.TotalUsers, report.ActiveUsersThisWeek, report.ActiveUsersLastWeek)

	return report, nil
}
