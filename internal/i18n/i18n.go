package i18n

import (
	"fmt"
	"time"

	"github.com/2beens/sporttracker/internal/workout"
)

var tables = map[workout.Language]map[string]string{
	workout.LanguageEnglish: en,
	workout.LanguageRussian: ru,
}

var shortMonths = map[workout.Language][12]string{
	workout.LanguageEnglish: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	workout.LanguageRussian: {"янв", "фев", "мар", "апр", "мая", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
}

// T returns the message for key in lang, formatted with args.
// Missing keys fall back to english, then to the key itself.
func T(lang workout.Language, key string, args ...any) string {
	msg, ok := tables[lang][key]
	if !ok {
		msg, ok = en[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// TN is T for messages that agree with the count n. It picks key.one, key.few
// or key.other following the plural rules of lang, falling back to key.other.
func TN(lang workout.Language, key string, n int, args ...any) string {
	if _, ok := tables[lang]; !ok {
		lang = workout.LanguageEnglish
	}
	form := key + "." + pluralForm(lang, n)
	if _, ok := tables[lang][form]; ok {
		return T(lang, form, args...)
	}
	return T(lang, key+".other", args...)
}

func pluralForm(lang workout.Language, n int) string {
	if n < 0 {
		n = -n
	}

	switch lang {
	case workout.LanguageRussian:
		mod10, mod100 := n%10, n%100
		switch {
		case mod10 == 1 && mod100 != 11:
			return "one"
		case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
			return "few"
		default:
			return "other"
		}
	default:
		if n == 1 {
			return "one"
		}
		return "other"
	}
}

// ShortDate formats t as e.g. "Mar 3" (en) or "3 мар" (ru).
func ShortDate(lang workout.Language, t time.Time) string {
	months, ok := shortMonths[lang]
	if !ok {
		months = shortMonths[workout.LanguageEnglish]
	}
	month := months[t.Month()-1]
	if lang == workout.LanguageRussian {
		return fmt.Sprintf("%d %s", t.Day(), month)
	}
	return fmt.Sprintf("%s %d", month, t.Day())
}

// Category returns the localized name of a workout category.
func Category(lang workout.Language, c workout.Category) string {
	return T(lang, "category."+string(c))
}
