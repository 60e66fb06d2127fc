package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/2beens/sporttracker/internal/stats"
	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/internal/workout"
)

// DigestSnapshot holds everything the weekly digest needs, loaded once for all users.
type DigestSnapshot struct {
	Week         stats.Window
	PreviousWeek stats.Window
	Users        []workout.User
	Board        stats.Leaderboard

	current  map[uuid.UUID]stats.Aggregate
	previous map[uuid.UUID]stats.Aggregate
}

type DigestSummary struct {
	Current     stats.Aggregate
	Previous    stats.Aggregate
	Comparison  stats.Comparison
	Rank        int
	Ranked      bool
	RankedCount int
}

// FirstTime reports users with no workouts in either week.
func (d DigestSummary) FirstTime() bool {
	return d.Comparison.Trend == stats.TrendFirstTime
}

func (s *Service) DigestSnapshot(ctx context.Context) (_ *DigestSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.digestSnapshot")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	week := stats.CurrentWeek(s.now())
	prevWeek := week.Previous()

	currentUsers, err := s.repo.FindAllUsersWithWorkouts(ctx, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("find users with workouts, current week: %w", err)
	}
	previousUsers, err := s.repo.FindAllUsersWithWorkouts(ctx, prevWeek.Start, prevWeek.End)
	if err != nil {
		return nil, fmt.Errorf("find users with workouts, previous week: %w", err)
	}

	snapshot := &DigestSnapshot{
		Week:         week,
		PreviousWeek: prevWeek,
		Users:        make([]workout.User, 0, len(currentUsers)),
		Board:        stats.Rank(stats.AggregateByUser(currentUsers, week), 0, nil),
		current:      make(map[uuid.UUID]stats.Aggregate, len(currentUsers)),
		previous:     make(map[uuid.UUID]stats.Aggregate, len(previousUsers)),
	}
	for _, uw := range currentUsers {
		snapshot.Users = append(snapshot.Users, uw.User)
		snapshot.current[uw.User.ID] = stats.AggregateWindow(uw.Workouts, week)
	}
	for _, uw := range previousUsers {
		snapshot.previous[uw.User.ID] = stats.AggregateWindow(uw.Workouts, prevWeek)
	}

	return snapshot, nil
}

// SummaryFor returns the digest numbers of one user. Unknown users get zero aggregates.
func (d *DigestSnapshot) SummaryFor(userID uuid.UUID) DigestSummary {
	current := d.current[userID]
	previous := d.previous[userID]
	rank, ranked := d.Board.RankOf(userID)

	return DigestSummary{
		Current:     current,
		Previous:    previous,
		Comparison:  stats.Compare(current, previous),
		Rank:        rank,
		Ranked:      ranked,
		RankedCount: d.Board.RankedCount,
	}
}
