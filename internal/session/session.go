package session

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/sporttracker/internal/workout"
)

var ErrNoSession = errors.New("no session")

type Step string

const (
	StepSelectType     Step = "select_type"
	StepSelectDuration Step = "select_duration"
	StepCustomDuration Step = "custom_duration"
)

// State is the progress of a user through the add workout wizard.
type State struct {
	Step        Step             `json:"step"`
	WorkoutType workout.Category `json:"workoutType,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Store keeps wizard state per telegram user. Entries expire after the store's TTL,
// after which Get returns ErrNoSession.
type Store interface {
	Get(ctx context.Context, telegramID int64) (*State, error)
	Set(ctx context.Context, telegramID int64, state State) error
	Clear(ctx context.Context, telegramID int64) error
}
