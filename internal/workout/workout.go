package workout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinDuration = 1
	// MaxDuration is one full day, in minutes
	MaxDuration = 1440
)

var (
	ErrInvalidDuration = errors.New("invalid workout duration")
	ErrUnknownCategory = errors.New("unknown workout category")
)

type Category string

const (
	CategoryGym        Category = "GYM"
	CategoryTennis     Category = "TENNIS"
	CategoryRunning    Category = "RUNNING"
	CategoryFootball   Category = "FOOTBALL"
	CategoryBasketball Category = "BASKETBALL"
	CategoryYoga       Category = "YOGA"
	CategorySwimming   Category = "SWIMMING"
	CategoryCycling    Category = "CYCLING"
	CategoryOther      Category = "OTHER"
)

// Categories holds all categories in their stable enumeration order.
// Anything that has to pick between categories deterministically uses this order.
var Categories = []Category{
	CategoryGym,
	CategoryTennis,
	CategoryRunning,
	CategoryFootball,
	CategoryBasketball,
	CategoryYoga,
	CategorySwimming,
	CategoryCycling,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Emoji() string {
	switch c {
	case CategoryGym:
		return "🏋️"
	case CategoryTennis:
		return "🎾"
	case CategoryRunning:
		return "🏃"
	case CategoryFootball:
		return "⚽"
	case CategoryBasketball:
		return "🏀"
	case CategoryYoga:
		return "🧘"
	case CategorySwimming:
		return "🏊"
	case CategoryCycling:
		return "🚴"
	default:
		return "💪"
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

type Workout struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Type      Category  `json:"type"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWorkout validates the input and returns a workout ready to be stored.
func NewWorkout(userID uuid.UUID, category Category, duration int, createdAt time.Time) (Workout, error) {
	if !category.Valid() {
		return Workout{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if err := ValidateDuration(duration); err != nil {
		return Workout{}, err
	}
	return Workout{
		UserID:    userID,
		Type:      category,
		Duration:  duration,
		CreatedAt: createdAt,
	}, nil
}

func ValidateDuration(duration int) error {
	if duration < MinDuration || duration > MaxDuration {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidDuration, duration, MinDuration, MaxDuration)
	}
	return nil
}

// ParseDuration parses a free text duration (in minutes) typed by a user.
func ParseDuration(s string) (int, error) {
	duration, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if err := ValidateDuration(duration); err != nil {
		return 0, err
	}
	return duration, nil
}

// UserWorkouts is a user together with the workouts found for some time range.
type UserWorkouts struct {
	User     User
	Workouts []Workout
}
