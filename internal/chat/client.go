// Package chat sends user messages to the relay server.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// Path is the relay's chat endpoint.
const Path = "/api/chat"

// User-facing replies for failed requests.
const (
	MsgGeneric   = "Sorry, I encountered an error processing your request."
	MsgMisconfig = "Sorry, there seems to be an issue with the server configuration. Please make sure the API endpoint is properly set up."
	MsgNotFound  = "Sorry, the API endpoint could not be found. Please check your deployment configuration."
	MsgNetwork   = "Sorry, there was a network error. Please check your internet connection and try again."
)

const maxErrorBody = 64 << 10

// ErrEmptyMessage is returned for a blank message; nothing is sent.
var ErrEmptyMessage = errors.New("chat: empty message")

// StatusError is a non-2xx reply from the relay.
type StatusError struct {
	Code    int
	Message string // relay's message field, if any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("chat: API request failed with status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("chat: API request failed with status %d", e.Code)
}

// Client talks to a relay server.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// New returns a client for the relay at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + Path,
		http:     &http.Client{Timeout: timeout},
		log:      logger.Named("chat"),
	}
}

// SendMessage posts text to the relay. On failure the returned response
// still carries a message fit to show the user, with Error set, alongside
// the underlying error.
func (c *Client) SendMessage(ctx context.Context, text string) (schema.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return schema.ChatResponse{}, ErrEmptyMessage
	}
	resp, err := c.send(ctx, text)
	if err != nil {
		c.log.Warn("chat request failed", zap.String("endpoint", c.endpoint), zap.Error(err))
		return schema.ChatResponse{Message: FriendlyMessage(err), Error: true}, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, text string) (schema.ChatResponse, error) {
	body, err := json.Marshal(map[string]string{"message": text})
	if err != nil {
		return schema.ChatResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return schema.ChatResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return schema.ChatResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		se := &StatusError{Code: resp.StatusCode}
		if parsed, err := schema.ParseChatResponse(raw); err == nil {
			se.Message = parsed.Message
		}
		return schema.ChatResponse{}, se
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return schema.ChatResponse{}, err
	}
	return schema.ParseChatResponse(raw)
}

// FriendlyMessage turns a SendMessage error into text for the user.
func FriendlyMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusMethodNotAllowed:
			return MsgMisconfig
		case http.StatusNotFound:
			return MsgNotFound
		}
		if se.Message != "" {
			return MsgGeneric + " " + se.Message
		}
		return MsgGeneric
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return MsgNetwork
	}
	return MsgGeneric
}
