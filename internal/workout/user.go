package workout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"

	DefaultLanguage = LanguageEnglish
)

var Languages = []Language{LanguageEnglish, LanguageRussian}

func ParseLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Languages {
		if lang == known {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// LanguageOrDefault maps a client reported language code (e.g. "ru-RU") to a supported language.
func LanguageOrDefault(code string) Language {
	code, _, _ = strings.Cut(code, "-")
	lang, err := ParseLanguage(code)
	if err != nil {
		return DefaultLanguage
	}
	return lang
}

type User struct {
	ID         uuid.UUID `json:"id"`
	TelegramID int64     `json:"telegramId"`
	Name       string    `json:"name,omitempty"`
	Language   Language  `json:"language"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DisplayName never returns an empty string, so leaderboards always have something to show.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return fmt.Sprintf("user%d", u.TelegramID)
}

// PickName picks the name we show for a chat user: username first, then first name, then last name.
func PickName(username, firstName, lastName string) string {
	for _, n := range []string{username, firstName, lastName} {
		if n = strings.TrimSpace(n); n != "" {
			return n
		}
	}
	return ""
}
