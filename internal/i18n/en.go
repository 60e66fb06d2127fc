package i18n

var en = map[string]string{
	"welcome.title":    "🏃 Welcome to Sport Tracker, %s!",
	"welcome.body":     "Log your workouts with a few taps, follow your weekly progress and compete with others on the leaderboard.",
	"home.title":       "🏠 What would you like to do?",
	"help.text":        "🏃 Sport Tracker commands:\n\n📊 /stats - your weekly statistics\n📋 /history - your recent workouts\n🏆 /leaderboard - weekly leaderboard\n👨‍💼 /admin - bot statistics (admins only)\n🌐 /language - change language\n❓ /help - show this message\n\nUse the buttons to log a workout.",
	"unknown.command":  "🤔 I don't know that command. Try /help.",
	"unknown.text":     "Use the buttons below or /help to see what I can do.",
	"error.generic":    "❌ Something went wrong. Please try again.",
	"error.rateLimit":  "⏳ Too many requests, please slow down a bit.",
	"language.select":  "🌐 Please select your language:",
	"language.changed": "✅ Language changed to English.",

	"button.addWorkout":  "➕ Add Workout",
	"button.myStats":     "📈 My Stats",
	"button.history":     "📋 History",
	"button.leaderboard": "🏆 Leaderboard",
	"button.home":        "🏠 Home",
	"button.addAnother":  "➕ Add Another Workout",
	"button.tryAgain":    "🔄 Try Again",
	"button.language":    "🌐 Change Language",
	"button.english":     "🇺🇸 English",
	"button.russian":     "🇷🇺 Русский",
	"button.custom":      "✏️ Custom",
	"button.cancel":      "❌ Cancel",

	"category.GYM":        "Gym",
	"category.TENNIS":     "Tennis",
	"category.RUNNING":    "Running",
	"category.FOOTBALL":   "Football",
	"category.BASKETBALL": "Basketball",
	"category.YOGA":       "Yoga",
	"category.SWIMMING":   "Swimming",
	"category.CYCLING":    "Cycling",
	"category.OTHER":      "Other",

	"workout.chooseType":      "🏃 Choose your workout type:",
	"workout.howLong":         "%s %s selected! How long was your workout?",
	"workout.enterDuration":   "⏱️ Send the duration in minutes (1-1440):",
	"workout.invalidDuration": "❌ Please enter a valid duration between 1 and 1440 minutes.",
	"workout.sessionExpired":  "⌛ Your workout session expired. Please start again.",
	"workout.logged":          "✅ Workout logged successfully!\n\n%s %s\n⏱️ Duration: %d minutes\n📅 Date: %s\n\nGreat job!",
	"workout.minutes":         "%d min",

	"stats.title":      "📈 Weekly Workout Statistics\n📅 %s - %s",
	"stats.thisWeek":   "🏃 This Week:\n   • Workouts: %d\n   • Duration: %d minutes\n   • Average: %.0f minutes",
	"stats.favorite":   "   • Favorite: %s %s",
	"stats.vsLastWeek": "📊 vs Last Week:\n   • Workouts: %+d (%d → %d)\n   • Duration: %+d min (%d → %d min)",
	"stats.noWorkouts": "🏃 This Week: No workouts yet",

	"trend.first_time":       "🚀 Ready to start your fitness journey?",
	"trend.resumed":          "🚀 Great start! Consistency is key!",
	"trend.lapsed":           "💪 Time to get back on track!",
	"trend.improved":         "🎉 Great job! You're improving! 💪",
	"trend.declined":         "💪 Keep going! Every workout counts!",
	"trend.unchanged_active": "💪 Keep up the consistency!",

	"history.title": "📋 Your Recent Workouts",
	"history.empty": "You haven't logged any workouts yet.",
	"history.entry": "%s %s - %d min (%s)",

	"leaderboard.title":              "🏆 Weekly Leaderboard\n📅 %s - %s",
	"leaderboard.empty":              "No participants this week yet. Be the first!",
	"leaderboard.entry.one":          "%s %s — %d min (%d session)",
	"leaderboard.entry.other":        "%s %s — %d min (%d sessions)",
	"leaderboard.you":                "You",
	"leaderboard.yourPosition.one":   "📍 Your position: %d. — %d min (%d session)",
	"leaderboard.yourPosition.other": "📍 Your position: %d. — %d min (%d sessions)",
	"leaderboard.notRanked":          "You're not on the leaderboard this week yet. Log a workout to join!",

	"admin.accessDenied": "❌ Access denied. Admin privileges required.",
	"admin.title":        "📊 Bot Statistics Report",
	"admin.users":        "👥 Users:\n   • Total Registered: %d\n   • Active This Week: %d\n   • Active Last Week: %d\n   • New Users (7 days): %d",
	"admin.workouts":     "🏃 Workouts:\n   • Total Workouts: %d\n   • Avg per User: %.1f\n   • Avg Duration: %.1f min\n   • Most Popular: %s",
	"admin.engagement":   "📈 Engagement:\n   • Weekly Active Rate: %.1f%%\n   • Growth Rate: %.1f%%",
	"admin.none":         "None",

	"digest.title":           "📊 Weekly Summary Report\n📅 %s - %s",
	"digest.firstTime":       "Welcome to Sport Tracker! 🎉\n\nThis is your first weekly summary. Start logging your workouts to see your progress and compete on the leaderboard!\n\n💪 Ready to begin your fitness journey?",
	"digest.thisWeek":        "🏃 This Week:\n   • Workouts: %d\n   • Total Time: %d minutes",
	"digest.progress":        "📈 Progress from Last Week:",
	"digest.moreCount.one":   "📈 +%d more workout",
	"digest.moreCount.other": "📈 +%d more workouts",
	"digest.lessCount.one":   "📉 %d fewer workout",
	"digest.lessCount.other": "📉 %d fewer workouts",
	"digest.sameCount":       "📊 Same number of workouts",
	"digest.moreTime.one":    "⏱️ +%d more minute",
	"digest.moreTime.other":  "⏱️ +%d more minutes",
	"digest.lessTime.one":    "⏱️ %d fewer minute",
	"digest.lessTime.other":  "⏱️ %d fewer minutes",
	"digest.sameTime":        "⏱️ Same total time",
	"digest.position":        "🏆 Leaderboard Position: %d/%d",
	"digest.notRanked":       "🏆 Leaderboard Position: Not ranked",
	"digest.top3":            "🏆 You're in the top 3! Incredible performance!",
	"digest.top5":            "🥇 Great job! You're in the top 5!",
	"digest.keepPushing":     "💪 Keep pushing! Every workout counts!",
}
