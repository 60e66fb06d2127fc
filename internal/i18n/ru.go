package i18n

var ru = map[string]string{
	"welcome.title":    "🏃 Добро пожаловать в Sport Tracker, %s!",
	"welcome.body":     "Записывайте тренировки в пару нажатий, следите за прогрессом за неделю и соревнуйтесь с другими в рейтинге.",
	"home.title":       "🏠 Что вы хотите сделать?",
	"help.text":        "🏃 Команды Sport Tracker:\n\n📊 /stats - ваша статистика за неделю\n📋 /history - последние тренировки\n🏆 /leaderboard - рейтинг недели\n👨‍💼 /admin - статистика бота (только для админов)\n🌐 /language - сменить язык\n❓ /help - показать это сообщение\n\nИспользуйте кнопки, чтобы добавить тренировку.",
	"unknown.command":  "🤔 Я не знаю такой команды. Попробуйте /help.",
	"unknown.text":     "Используйте кнопки ниже или /help, чтобы узнать, что я умею.",
	"error.generic":    "❌ Что-то пошло не так. Попробуйте ещё раз.",
	"error.rateLimit":  "⏳ Слишком много запросов, немного притормозите.",
	"language.select":  "🌐 Выберите язык:",
	"language.changed": "✅ Язык изменён на русский.",

	"button.addWorkout":  "➕ Добавить тренировку",
	"button.myStats":     "📈 Моя статистика",
	"button.history":     "📋 История",
	"button.leaderboard": "🏆 Рейтинг",
	"button.home":        "🏠 Главная",
	"button.addAnother":  "➕ Добавить ещё",
	"button.tryAgain":    "🔄 Попробовать снова",
	"button.language":    "🌐 Сменить язык",
	"button.english":     "🇺🇸 English",
	"button.russian":     "🇷🇺 Русский",
	"button.custom":      "✏️ Своё значение",
	"button.cancel":      "❌ Отмена",

	"category.GYM":        "Тренажёрный зал",
	"category.TENNIS":     "Теннис",
	"category.RUNNING":    "Бег",
	"category.FOOTBALL":   "Футбол",
	"category.BASKETBALL": "Баскетбол",
	"category.YOGA":       "Йога",
	"category.SWIMMING":   "Плавание",
	"category.CYCLING":    "Велосипед",
	"category.OTHER":      "Другое",

	"workout.chooseType":      "🏃 Выберите тип тренировки:",
	"workout.howLong":         "Выбрано: %s %s! Сколько длилась тренировка?",
	"workout.enterDuration":   "⏱️ Отправьте длительность в минутах (1-1440):",
	"workout.invalidDuration": "❌ Введите длительность от 1 до 1440 минут.",
	"workout.sessionExpired":  "⌛ Сессия добавления тренировки истекла. Начните заново.",
	"workout.logged":          "✅ Тренировка записана!\n\n%s %s\n⏱️ Длительность: %d мин\n📅 Дата: %s\n\nОтличная работа!",
	"workout.minutes":         "%d мин",

	"stats.title":      "📈 Статистика тренировок за неделю\n📅 %s - %s",
	"stats.thisWeek":   "🏃 Эта неделя:\n   • Тренировок: %d\n   • Длительность: %d мин\n   • В среднем: %.0f мин",
	"stats.favorite":   "   • Любимая: %s %s",
	"stats.vsLastWeek": "📊 По сравнению с прошлой неделей:\n   • Тренировок: %+d (%d → %d)\n   • Длительность: %+d мин (%d → %d мин)",
	"stats.noWorkouts": "🏃 Эта неделя: тренировок пока нет",

	"trend.first_time":       "🚀 Готовы начать путь к хорошей форме?",
	"trend.resumed":          "🚀 Отличное начало! Главное - регулярность!",
	"trend.lapsed":           "💪 Пора вернуться в строй!",
	"trend.improved":         "🎉 Отлично! Вы прогрессируете! 💪",
	"trend.declined":         "💪 Не сдавайтесь! Каждая тренировка на счету!",
	"trend.unchanged_active": "💪 Так держать!",

	"history.title": "📋 Ваши последние тренировки",
	"history.empty": "Вы ещё не записали ни одной тренировки.",
	"history.entry": "%s %s - %d мин (%s)",

	"leaderboard.title":              "🏆 Рейтинг недели\n📅 %s - %s",
	"leaderboard.empty":              "На этой неделе участников пока нет. Станьте первым!",
	"leaderboard.entry.one":          "%s %s — %d мин (%d трен.)",
	"leaderboard.entry.few":          "%s %s — %d мин (%d трен.)",
	"leaderboard.entry.other":        "%s %s — %d мин (%d трен.)",
	"leaderboard.you":                "Вы",
	"leaderboard.yourPosition.one":   "📍 Ваше место: %d. — %d мин (%d трен.)",
	"leaderboard.yourPosition.few":   "📍 Ваше место: %d. — %d мин (%d трен.)",
	"leaderboard.yourPosition.other": "📍 Ваше место: %d. — %d мин (%d трен.)",
	"leaderboard.notRanked":          "На этой неделе вас ещё нет в рейтинге. Запишите тренировку, чтобы попасть в него!",

	"admin.accessDenied": "❌ Доступ запрещён. Нужны права администратора.",
	"admin.title":        "📊 Отчёт по статистике бота",
	"admin.users":        "👥 Пользователи:\n   • Всего: %d\n   • Активны на этой неделе: %d\n   • Активны на прошлой неделе: %d\n   • Новые (7 дней): %d",
	"admin.workouts":     "🏃 Тренировки:\n   • Всего: %d\n   • В среднем на пользователя: %.1f\n   • Средняя длительность: %.1f мин\n   • Самая популярная: %s",
	"admin.engagement":   "📈 Вовлечённость:\n   • Доля активных за неделю: %.1f%%\n   • Рост: %.1f%%",
	"admin.none":         "Нет",

	"digest.title":           "📊 Итоги недели\n📅 %s - %s",
	"digest.firstTime":       "Добро пожаловать в Sport Tracker! 🎉\n\nЭто ваши первые недельные итоги. Записывайте тренировки, чтобы видеть прогресс и соревноваться в рейтинге!\n\n💪 Готовы начать?",
	"digest.thisWeek":        "🏃 Эта неделя:\n   • Тренировок: %d\n   • Общее время: %d мин",
	"digest.progress":        "📈 По сравнению с прошлой неделей:",
	"digest.moreCount.one":   "📈 На %d тренировку больше",
	"digest.moreCount.few":   "📈 На %d тренировки больше",
	"digest.moreCount.other": "📈 На %d тренировок больше",
	"digest.lessCount.one":   "📉 На %d тренировку меньше",
	"digest.lessCount.few":   "📉 На %d тренировки меньше",
	"digest.lessCount.other": "📉 На %d тренировок меньше",
	"digest.sameCount":       "📊 Столько же тренировок",
	"digest.moreTime.one":    "⏱️ На %d минуту больше",
	"digest.moreTime.few":    "⏱️ На %d минуты больше",
	"digest.moreTime.other":  "⏱️ На %d минут больше",
	"digest.lessTime.one":    "⏱️ На %d минуту меньше",
	"digest.lessTime.few":    "⏱️ На %d минуты меньше",
	"digest.lessTime.other":  "⏱️ На %d минут меньше",
	"digest.sameTime":        "⏱️ Столько же времени",
	"digest.position":        "🏆 Место в рейтинге: %d/%d",
	"digest.notRanked":       "🏆 Место в рейтинге: нет",
	"digest.top3":            "🏆 Вы в тройке лидеров! Невероятный результат!",
	"digest.top5":            "🥇 Отлично! Вы в пятёрке лучших!",
	"digest.keepPushing":     "💪 Продолжайте! Каждая тренировка на счету!",
}
