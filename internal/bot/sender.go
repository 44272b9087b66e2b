package bot

import (
	"bytes"
	"dbb/internal/providers"
	"dbb/internal/structures"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const defaultApiURL = "https://api.telegram.org"

// Sender delivers a message to a chat. Implementations may fail; callers
// log and move on to the next recipient.
type Sender interface {
	SendMessage(chatID int64, text, parseMode string) error
}

// TelegramSender talks to the Telegram Bot API over HTTP.
type TelegramSender struct {
	apiURL string
	token  string
	client *http.Client
	logger providers.Logger
}

func NewTelegramSender(conf *structures.Config, logger providers.Logger) Sender {
	apiURL := conf.Bot.ApiURL
	if apiURL == "" {
		apiURL = defaultApiURL
	}
	timeout := conf.Bot.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramSender{
		apiURL: apiURL,
		token:  conf.Bot.Token,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

func (ts *TelegramSender) SendMessage(chatID int64, text, parseMode string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", ts.apiURL, ts.token)
	resp, err := ts.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("malformed API response (HTTP %d): %w", resp.StatusCode, err)
	}
	if !result.Ok {
		return fmt.Errorf("sendMessage failed for chat %d: %d %s", chatID, result.ErrorCode, result.Description)
	}

	ts.logger.Debugf(providers.TypeSend, "Delivered message to chat %d", chatID)
	return nil
}
