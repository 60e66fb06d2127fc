package stats

type Trend string

const (
	TrendFirstTime       Trend = "first_time"
	TrendLapsed          Trend = "lapsed"
	TrendResumed         Trend = "resumed"
	TrendImproved        Trend = "improved"
	TrendDeclined        Trend = "declined"
	TrendUnchangedActive Trend = "unchanged_active"
)

type Comparison struct {
	CountDelta    int   `json:"countDelta"`
	DurationDelta int   `json:"durationDelta"`
	Trend         Trend `json:"trend"`
}

// Compare classifies this week against the previous one, first matching rule wins.
// A positive delta beats a negative one, so mixed signals are reported as improved.
func Compare(current, previous Aggregate) Comparison {
	c := Comparison{
		CountDelta:    current.Count - previous.Count,
		DurationDelta: current.TotalDuration - previous.TotalDuration,
	}

	switch {
	case current.Count == 0 && previous.Count == 0:
		c.Trend = TrendFirstTime
	case current.Count == 0:
		c.Trend = TrendLapsed
	case previous.Count == 0:
		c.Trend = TrendResumed
	case c.CountDelta > 0 || c.DurationDelta > 0:
		c.Trend = TrendImproved
	case c.CountDelta < 0 || c.DurationDelta < 0:
		c.Trend = TrendDeclined
	default:
		c.Trend = TrendUnchangedActive
	}

	return c
}

type EngagementRates struct {
	WeeklyActiveRate float64 `json:"weeklyActiveRate"`
	GrowthRate       float64 `json:"growthRate"`
}

// Engagement computes platform wide rates as fractions (0.4 means 40%).
// Both are 0 when their denominator is 0.
func Engagement(totalUsers, activeThisWeek, activeLastWeek int) EngagementRates {
	return EngagementRates{
		WeeklyActiveRate: Ratio(activeThisWeek, totalUsers),
		GrowthRate:       Ratio(activeThisWeek-activeLastWeek, activeLastWeek),
	}
}
