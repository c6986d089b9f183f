package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"giveaway-backend/internal/common/errors"
	"giveaway-backend/internal/common/logger"
)

const defaultAPIBase = "https://api.telegram.org"

// Response is the Telegram Bot API response envelope.
type Response struct {
	Ok          bool        `json:"ok"`
	Result      interface{} `json:"result,omitempty"`
	ErrorCode   int         `json:"error_code,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Client is a minimal Telegram Bot API client. The token is fixed at
// construction and the HTTP client carries a bounded timeout so a slow
// API call cannot stall a request indefinitely.
type Client struct {
	httpClient *http.Client
	apiBase    string
	token      string
}

type Option func(*Client)

// WithAPIBase overrides the Bot API host, used in tests.
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		apiBase: defaultAPIBase,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage delivers a text message to a chat. The chat ID may be a
// numeric ID or an @username address.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (*Response, error) {
	if c.token == "" {
		return nil, errors.NewConfigurationError("Telegram API token is not configured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.token)
	params := url.Values{
		"chat_id": {chatID},
		"text":    {text},
	}

	var response Response
	if err := c.makeRequest(ctx, http.MethodPost, endpoint, params, &response); err != nil {
		return nil, errors.NewTelegramAPIError("sendMessage", err)
	}

	if !response.Ok {
		logger.Warn().
			Str("chat_id", chatID).
			Int("error_code", response.ErrorCode).
			Str("description", response.Description).
			Msg("Telegram API rejected sendMessage")
	}

	return &response, nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, data url.Values, result interface{}) error {
	var req *http.Request
	var err error

	if method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(data.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		if len(data) > 0 {
			endpoint = fmt.Sprintf("%s?%s", endpoint, data.Encode())
		}
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
