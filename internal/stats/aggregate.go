package stats

import (
	"github.com/google/uuid"

	"github.com/2beens/sporttracker/internal/workout"
)

// Aggregate holds the totals of a set of workouts. MostFrequentCategory is nil when Count is 0.
type Aggregate struct {
	Count                int               `json:"count"`
	TotalDuration        int               `json:"totalDuration"`
	AverageDuration      float64           `json:"averageDuration"`
	MostFrequentCategory *workout.Category `json:"mostFrequentCategory,omitempty"`
}

// AggregateWindow reduces the records created within w.
// Most frequent category ties go to whichever comes first in workout.Categories.
func AggregateWindow(records []workout.Workout, w Window) Aggregate {
	var agg Aggregate
	perCategory := make(map[workout.Category]int)
	for _, r := range records {
		if !w.Contains(r.CreatedAt) {
			continue
		}
		agg.Count++
		agg.TotalDuration += r.Duration
		perCategory[r.Type]++
	}

	if agg.Count == 0 {
		return agg
	}

	agg.AverageDuration = Ratio(agg.TotalDuration, agg.Count)

	best := 0
	for _, c := range workout.Categories {
		if perCategory[c] > best {
			best = perCategory[c]
			category := c
			agg.MostFrequentCategory = &category
		}
	}

	return agg
}

type UserAggregate struct {
	UserID               uuid.UUID `json:"userId"`
	DisplayName          string    `json:"displayName"`
	WorkoutCount         int       `json:"workoutCount"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
}

// AggregateByUser reduces each user's records over w. Users with nothing in w are kept with zero totals.
func AggregateByUser(users []workout.UserWorkouts, w Window) []UserAggregate {
	aggs := make([]UserAggregate, 0, len(users))
	for _, uw := range users {
		agg := AggregateWindow(uw.Workouts, w)
		aggs = append(aggs, UserAggregate{
			UserID:               uw.User.ID,
			DisplayName:          uw.User.DisplayName(),
			WorkoutCount:         agg.Count,
			TotalDurationMinutes: agg.TotalDuration,
		})
	}
	return aggs
}

// Ratio divides and returns 0 instead of NaN or Inf when den is 0.
func Ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
