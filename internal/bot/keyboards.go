package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/2beens/sporttracker/internal/i18n"
	"github.com/2beens/sporttracker/internal/workout"
)

// callback data
const (
	cbAddWorkout     = "add_workout"
	cbMyStats        = "my_stats"
	cbViewHistory    = "view_history"
	cbLeaderboard    = "leaderboard"
	cbHome           = "home"
	cbLanguage       = "language"
	cbDurationCustom = "duration_custom"

	cbWorkoutTypePrefix = "workout_type_"
	cbDurationPrefix    = "duration_"
	cbLanguagePrefix    = "lang_"
)

var presetDurations = []int{30, 45, 60, 90}

func button(lang workout.Language, key, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, key), data)
}

func mainMenuKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.addWorkout", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(
			button(lang, "button.myStats", cbMyStats),
			button(lang, "button.history", cbViewHistory),
		),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.leaderboard", cbLeaderboard)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.language", cbLanguage)),
	)
}

// workoutTypeKeyboard lays the categories out 3 per row, in enumeration order.
func workoutTypeKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range workout.Categories {
		label := fmt.Sprintf("%s %s", c.Emoji(), i18n.Category(lang, c))
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, cbWorkoutTypePrefix+string(c)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func durationKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	var presets []tgbotapi.InlineKeyboardButton
	for _, d := range presetDurations {
		presets = append(presets, tgbotapi.NewInlineKeyboardButtonData(
			i18n.T(lang, "workout.minutes", d),
			cbDurationPrefix+strconv.Itoa(d),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		presets,
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.custom", cbDurationCustom)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.cancel", cbAddWorkout)),
	)
}

func cancelKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.cancel", cbAddWorkout)),
	)
}

func workoutLoggedKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.myStats", cbMyStats)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.addAnother", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

func statsKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.addWorkout", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.history", cbViewHistory)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.leaderboard", cbLeaderboard)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

func leaderboardKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.addWorkout", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.myStats", cbMyStats)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

func homeKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

func retryKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.tryAgain", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

func languageKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button(lang, "button.english", cbLanguagePrefix+string(workout.LanguageEnglish)),
			button(lang, "button.russian", cbLanguagePrefix+string(workout.LanguageRussian)),
		),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.home", cbHome)),
	)
}

// DigestKeyboard is attached to the weekly summary message.
func DigestKeyboard(lang workout.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.addWorkout", cbAddWorkout)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.myStats", cbMyStats)),
		tgbotapi.NewInlineKeyboardRow(button(lang, "button.leaderboard", cbLeaderboard)),
	)
}
