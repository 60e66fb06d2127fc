package bot

import (
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewTelegramAPI creates the telegram bot API client. Outgoing calls are traced.
// An empty apiEndpoint means the public telegram API.
func NewTelegramAPI(token, apiEndpoint string, timeout time.Duration) (*tgbotapi.BotAPI, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}
	log.Infof("authorized on telegram as @%s", api.Self.UserName)

	return api, nil
}

var commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "stats", Description: "Your weekly statistics"},
	{Command: "history", Description: "Your recent workouts"},
	{Command: "leaderboard", Description: "Weekly leaderboard"},
	{Command: "language", Description: "Change language"},
	{Command: "help", Description: "Show help"},
}

// RegisterCommands publishes the command list shown in telegram clients.
func RegisterCommands(client telegramClient) error {
	if _, err := client.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("set bot commands: %w", err)
	}
	return nil
}

// SetupWebhook points telegram to our webhook endpoint.
func SetupWebhook(client telegramClient, publicURL, secret string) error {
	webhook, err := tgbotapi.NewWebhook(WebhookURL(publicURL, secret))
	if err != nil {
		return fmt.Errorf("new webhook config: %w", err)
	}

	if _, err := client.Request(webhook); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	log.Infof("telegram webhook set to %s/telegram/webhook/***", publicURL)

	return nil
}

// DeleteWebhook is required before long polling, telegram refuses getUpdates while a webhook is set.
func DeleteWebhook(client telegramClient) error {
	if _, err := client.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

func WebhookURL(publicURL, secret string) string {
	return fmt.Sprintf("%s/telegram/webhook/%s", publicURL, secret)
}
