package bot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/2beens/sporttracker/internal/i18n"
	"github.com/2beens/sporttracker/internal/stats"
	"github.com/2beens/sporttracker/internal/tracker"
	"github.com/2beens/sporttracker/internal/workout"
)

var medals = []string{"🥇", "🥈", "🥉"}

func windowTitle(lang workout.Language, key string, w stats.Window) string {
	return i18n.T(lang, key, i18n.ShortDate(lang, w.Start), i18n.ShortDate(lang, w.End))
}

func categoryLabel(lang workout.Language, c workout.Category) (string, string) {
	return c.Emoji(), i18n.Category(lang, c)
}

func RenderWelcome(lang workout.Language, name string) string {
	return i18n.T(lang, "welcome.title", name) + "\n\n" + i18n.T(lang, "welcome.body")
}

func RenderWorkoutLogged(lang workout.Language, w *workout.Workout) string {
	emoji, name := categoryLabel(lang, w.Type)
	return i18n.T(lang, "workout.logged", emoji, name, w.Duration, i18n.ShortDate(lang, w.CreatedAt))
}

func RenderWeeklyStats(lang workout.Language, ws *tracker.WeeklyStats) string {
	var sb strings.Builder
	sb.WriteString(windowTitle(lang, "stats.title", ws.Week))
	sb.WriteString("\n\n")

	if ws.Current.Count == 0 {
		sb.WriteString(i18n.T(lang, "stats.noWorkouts"))
	} else {
		sb.WriteString(i18n.T(lang, "stats.thisWeek", ws.Current.Count, ws.Current.TotalDuration, ws.Current.AverageDuration))
		if ws.Current.MostFrequentCategory != nil {
			emoji, name := categoryLabel(lang, *ws.Current.MostFrequentCategory)
			sb.WriteString("\n")
			sb.WriteString(i18n.T(lang, "stats.favorite", emoji, name))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(i18n.T(lang, "stats.vsLastWeek",
		ws.Comparison.CountDelta, ws.Previous.Count, ws.Current.Count,
		ws.Comparison.DurationDelta, ws.Previous.TotalDuration, ws.Current.TotalDuration,
	))
	sb.WriteString("\n\n")
	sb.WriteString(trendLine(lang, ws.Comparison.Trend))

	return sb.String()
}

func RenderHistory(lang workout.Language, workouts []workout.Workout) string {
	if len(workouts) == 0 {
		return i18n.T(lang, "history.empty")
	}

	lines := []string{i18n.T(lang, "history.title"), ""}
	for _, w := range workouts {
		emoji, name := categoryLabel(lang, w.Type)
		lines = append(lines, i18n.T(lang, "history.entry", emoji, name, w.Duration, i18n.ShortDate(lang, w.CreatedAt)))
	}

	return strings.Join(lines, "\n")
}

func RenderLeaderboard(lang workout.Language, lb *tracker.Leaderboard, focus uuid.UUID) string {
	title := windowTitle(lang, "leaderboard.title", lb.Week)
	if len(lb.Board.Top) == 0 {
		return title + "\n\n" + i18n.T(lang, "leaderboard.empty")
	}

	lines := []string{title, ""}
	for _, entry := range lb.Board.Top {
		place := fmt.Sprintf("%d.", entry.Rank)
		if entry.Rank <= len(medals) {
			place = medals[entry.Rank-1]
		}
		name := entry.DisplayName
		if entry.UserID == focus {
			name = i18n.T(lang, "leaderboard.you")
		}
		lines = append(lines, i18n.TN(lang, "leaderboard.entry", entry.WorkoutCount, place, name, entry.TotalDurationMinutes, entry.WorkoutCount))
	}

	switch {
	case lb.Board.Focus != nil && !lb.Board.FocusInTop:
		f := lb.Board.Focus
		lines = append(lines, "...", i18n.TN(lang, "leaderboard.yourPosition", f.WorkoutCount, f.Rank, f.TotalDurationMinutes, f.WorkoutCount))
	case lb.Board.FocusUnranked:
		lines = append(lines, "", i18n.T(lang, "leaderboard.notRanked"))
	}

	return strings.Join(lines, "\n")
}

func RenderAdminReport(lang workout.Language, r *tracker.AdminReport) string {
	mostPopular := i18n.T(lang, "admin.none")
	if r.MostPopularCategory != nil {
		emoji, name := categoryLabel(lang, *r.MostPopularCategory)
		mostPopular = emoji + " " + name
	}

	return strings.Join([]string{
		i18n.T(lang, "admin.title"),
		i18n.T(lang, "admin.users", r.TotalUsers, r.ActiveUsersThisWeek, r.ActiveUsersLastWeek, r.RecentRegistrations),
		i18n.T(lang, "admin.workouts", r.TotalWorkouts, r.AvgWorkoutsPerUser, r.AvgDurationPerWorkout, mostPopular),
		i18n.T(lang, "admin.engagement", r.Engagement.WeeklyActiveRate*100, r.Engagement.GrowthRate*100),
	}, "\n\n")
}

// RenderDigest renders the weekly summary pushed to every user.
// Users with no workouts in both weeks get a welcome message instead.
// The closing line follows the trend of the week comparison.
func RenderDigest(lang workout.Language, week stats.Window, sum tracker.DigestSummary) string {
	if sum.FirstTime() {
		return i18n.T(lang, "digest.firstTime")
	}

	cmp := sum.Comparison
	lines := []string{
		windowTitle(lang, "digest.title", week),
		"",
		i18n.T(lang, "digest.thisWeek", sum.Current.Count, sum.Current.TotalDuration),
		"",
		i18n.T(lang, "digest.progress"),
	}
	if cmp.Trend == stats.TrendLapsed {
		lines = append(lines, trendLine(lang, stats.TrendLapsed))
	} else {
		lines = append(lines,
			deltaLine(lang, cmp.CountDelta, "digest.moreCount", "digest.lessCount", "digest.sameCount"),
			deltaLine(lang, cmp.DurationDelta, "digest.moreTime", "digest.lessTime", "digest.sameTime"),
		)
	}
	lines = append(lines, "")

	if sum.Ranked {
		lines = append(lines, i18n.T(lang, "digest.position", sum.Rank, sum.RankedCount))
	} else {
		lines = append(lines, i18n.T(lang, "digest.notRanked"))
	}

	var motivation string
	switch cmp.Trend {
	case stats.TrendLapsed:
		// already said in place of the progress lines
	case stats.TrendFirstTime, stats.TrendResumed, stats.TrendImproved:
		motivation = trendLine(lang, cmp.Trend)
	default:
		switch {
		case sum.Ranked && sum.Rank <= 3:
			motivation = i18n.T(lang, "digest.top3")
		case sum.Ranked && sum.Rank <= 5:
			motivation = i18n.T(lang, "digest.top5")
		default:
			motivation = i18n.T(lang, "digest.keepPushing")
		}
	}
	if motivation != "" {
		lines = append(lines, "", motivation)
	}

	return strings.Join(lines, "\n")
}

func trendLine(lang workout.Language, trend stats.Trend) string {
	return i18n.T(lang, "trend."+string(trend))
}

func deltaLine(lang workout.Language, delta int, moreKey, lessKey, sameKey string) string {
	switch {
	case delta > 0:
		return i18n.TN(lang, moreKey, delta, delta)
	case delta < 0:
		return i18n.TN(lang, lessKey, -delta, -delta)
	default:
		return i18n.T(lang, sameKey)
	}
}
