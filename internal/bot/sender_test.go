package bot

import (
	"dbb/internal/structures"
	"dbb/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTelegramSender(t *testing.T, handler http.HandlerFunc) Sender {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conf := &structures.Config{
		Bot: structures.BotConfig{
			Token:   "test-token",
			ApiURL:  server.URL,
			Timeout: 2 * time.Second,
		},
	}
	return NewTelegramSender(conf, &testutil.MockLogger{})
}

func TestTelegramSender_SendMessage(t *testing.T) {
	var gotPath string
	var gotPayload sendMessageRequest

	sender := newTestTelegramSender(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(apiResponse{Ok: true})
	})

	require.NoError(t, sender.SendMessage(42, "hello", "Markdown"))
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, int64(42), gotPayload.ChatID)
	assert.Equal(t, "hello", gotPayload.Text)
	assert.Equal(t, "Markdown", gotPayload.ParseMode)
}

func TestTelegramSender_ApiError(t *testing.T) {
	sender := newTestTelegramSender(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(apiResponse{Ok: false, ErrorCode: 403, Description: "bot was blocked by the user"})
	})

	err := sender.SendMessage(42, "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "blocked")
}

func TestTelegramSender_MalformedResponse(t *testing.T) {
	sender := newTestTelegramSender(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	assert.Error(t, sender.SendMessage(42, "hello", ""))
}

func TestTelegramSender_ConnectionRefused(t *testing.T) {
	conf := &structures.Config{
		Bot: structures.BotConfig{
			Token:  "test-token",
			ApiURL: "http://127.0.0.1:1",
		},
	}
	sender := NewTelegramSender(conf, &testutil.MockLogger{})
	assert.Error(t, sender.SendMessage(1, "x", ""))
}
