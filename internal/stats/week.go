package stats

import (
	"time"
)

const lastMillisecond = int(time.Second - time.Millisecond)

// Window is a closed time interval, both ends inclusive.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CurrentWeek returns the Monday to Sunday week containing ref, in ref's location.
// Start is Monday 00:00:00.000, End is the following Sunday 23:59:59.999.
func CurrentWeek(ref time.Time) Window {
	// Monday = 1 ... Sunday = 7
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	y, m, d := ref.Date()
	loc := ref.Location()
	mondayDay := d - (weekday - 1)

	return Window{
		Start: time.Date(y, m, mondayDay, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, mondayDay+6, 23, 59, 59, lastMillisecond, loc),
	}
}

// PreviousWeek returns the week right before the one containing ref.
func PreviousWeek(ref time.Time) Window {
	return CurrentWeek(ref).Previous()
}

// Previous shifts both bounds back by seven calendar days, keeping their wall clock times.
func (w Window) Previous() Window {
	return Window{
		Start: w.Start.AddDate(0, 0, -7),
		End:   w.End.AddDate(0, 0, -7),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
