package bot_test

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/sporttracker/internal/bot"
	testingpkg "github.com/2beens/sporttracker/pkg/testing"
)

func TestNewTelegramAPI(t *testing.T) {
	fake := testingpkg.NewFakeTelegram(t)

	api, err := bot.NewTelegramAPI(testingpkg.FakeTelegramToken, fake.Endpoint(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "sporttracker_test_bot", api.Self.UserName)
	assert.Len(t, fake.Calls("getMe"), 1)
}

func TestNewTelegramAPI_BadToken(t *testing.T) {
	fake := testingpkg.NewFakeTelegram(t)

	api, err := bot.NewTelegramAPI("999:wrong", fake.Endpoint(), 5*time.Second)
	require.Error(t, err)
	assert.Nil(t, api)
}

func TestRegisterCommands(t *testing.T) {
	fake := testingpkg.NewFakeTelegram(t)
	api, err := bot.NewTelegramAPI(testingpkg.FakeTelegramToken, fake.Endpoint(), 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, bot.RegisterCommands(api))

	calls := fake.Calls("setMyCommands")
	require.Len(t, calls, 1)
	commands := calls[0].Params.Get("commands")
	for _, c := range []string{"start", "stats", "history", "leaderboard", "language", "help"} {
		assert.Contains(t, commands, `"command":"`+c+`"`)
	}
}

func TestSetupAndDeleteWebhook(t *testing.T) {
	fake := testingpkg.NewFakeTelegram(t)
	api, err := bot.NewTelegramAPI(testingpkg.FakeTelegramToken, fake.Endpoint(), 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, bot.SetupWebhook(api, "https://bot.example.com", "s3cret"))
	calls := fake.Calls("setWebhook")
	require.Len(t, calls, 1)
	assert.Equal(t, "https://bot.example.com/telegram/webhook/s3cret", calls[0].Params.Get("url"))

	require.NoError(t, bot.DeleteWebhook(api))
	assert.Len(t, fake.Calls("deleteWebhook"), 1)
}

func TestSend_FailedChat(t *testing.T) {
	fake := testingpkg.NewFakeTelegram(t)
	fake.FailChat(42)
	api, err := bot.NewTelegramAPI(testingpkg.FakeTelegramToken, fake.Endpoint(), 5*time.Second)
	require.NoError(t, err)

	_, err = api.Send(tgbotapi.NewMessage(42, "hi"))
	require.Error(t, err)

	msg, err := api.Send(tgbotapi.NewMessage(43, "hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", msg.Text)
	assert.Len(t, fake.Calls("sendMessage"), 2)
}

func TestWebhookURL(t *testing.T) {
	assert.Equal(t, "https://x.io/telegram/webhook/abc", bot.WebhookURL("https://x.io", "abc"))
}
