package testing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const FakeTelegramToken = "123456:test-token"

type TelegramCall struct {
	Method string
	Params url.Values
}

// FakeTelegram is a minimal telegram bot API server. It records every call and
// answers the methods the bot uses with plausible results.
type FakeTelegram struct {
	Server *httptest.Server

	mu          sync.Mutex
	calls       []TelegramCall
	failedChats map[int64]bool
	messageID   int
}

func NewFakeTelegram(t *testing.T) *FakeTelegram {
	t.Helper()

	f := &FakeTelegram{failedChats: make(map[int64]bool)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)

	return f
}

// Endpoint is meant for tgbotapi.NewBotAPIWithClient.
func (f *FakeTelegram) Endpoint() string {
	return f.Server.URL + "/bot%s/%s"
}

// FailChat makes every message to chatID fail like a user that blocked the bot.
func (f *FakeTelegram) FailChat(chatID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failedChats[chatID] = true
}

func (f *FakeTelegram) Calls(method string) []TelegramCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	var calls []TelegramCall
	for _, c := range f.calls {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

func (f *FakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if len(parts) != 2 || parts[0] != "bot"+FakeTelegramToken {
		writeTelegramResponse(w, false, nil, "Unauthorized")
		return
	}
	method := parts[1]

	if err := r.ParseForm(); err != nil {
		writeTelegramResponse(w, false, nil, "bad request")
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, TelegramCall{Method: method, Params: r.PostForm})
	chatID, _ := strconv.ParseInt(r.PostForm.Get("chat_id"), 10, 64)
	failed := f.failedChats[chatID]
	f.messageID++
	messageID := f.messageID
	f.mu.Unlock()

	switch method {
	case "getMe":
		writeTelegramResponse(w, true, map[string]any{
			"id":         1,
			"is_bot":     true,
			"first_name": "Sport Tracker",
			"username":   "sporttracker_test_bot",
		}, "")
	case "sendMessage", "editMessageText":
		if failed {
			writeTelegramResponse(w, false, nil, "Forbidden: bot was blocked by the user")
			return
		}
		writeTelegramResponse(w, true, map[string]any{
			"message_id": messageID,
			"date":       time.Now().Unix(),
			"chat":       map[string]any{"id": chatID, "type": "private"},
			"text":       r.PostForm.Get("text"),
		}, "")
	case "getUpdates":
		select {
		case <-r.Context().Done():
		case <-time.After(50 * time.Millisecond):
		}
		writeTelegramResponse(w, true, []any{}, "")
	default:
		writeTelegramResponse(w, true, true, "")
	}
}

func writeTelegramResponse(w http.ResponseWriter, ok bool, result any, description string) {
	resp := map[string]any{"ok": ok}
	if ok {
		resp["result"] = result
	} else {
		resp["error_code"] = 403
		resp["description"] = description
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		panic(fmt.Sprintf("encode fake telegram response: %s", err))
	}
}
