package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

var (
	// ErrEmptyMessage is returned for a blank chat message.
	ErrEmptyMessage = errors.New("relay: message is required")
	// ErrNoAPIKey is returned when model mode has no API key configured.
	ErrNoAPIKey = errors.New("relay: API key not configured")
	// ErrInvalidReply is returned when the model's reply cannot be used.
	ErrInvalidReply = errors.New("relay: invalid model reply")
)

// Service turns chat messages into repair guides.
type Service struct {
	client Client // nil in mock mode
	model  string
	log    *zap.Logger
}

// NewService answers with client using model.
func NewService(client Client, model string) *Service {
	return &Service{client: client, model: model, log: logger.Named("relay")}
}

// NewMockService answers from the built-in demos.
func NewMockService() *Service {
	return &Service{log: logger.Named("relay")}
}

// Mock reports whether the service answers from demos.
func (s *Service) Mock() bool {
	return s.client == nil
}

// Chat answers msg. Upstream failures are returned as errors and never
// replaced with a demo answer.
func (s *Service) Chat(ctx context.Context, msg string) (schema.ChatResponse, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return schema.ChatResponse{}, ErrEmptyMessage
	}
	if s.Mock() {
		resp := Mock(msg)
		s.log.Debug("mock reply", zap.Bool("model", resp.HasModel()))
		return resp, nil
	}

	start := time.Now()
	reply, err := s.client.Complete(ctx, s.model, SystemPrompt, "USER ISSUE: "+msg)
	if err != nil {
		return schema.ChatResponse{}, fmt.Errorf("complete: %w", err)
	}
	resp, err := ParseReply(reply)
	if err != nil {
		s.log.Warn("unusable model reply", zap.Error(err), zap.Int("bytes", len(reply)))
		return schema.ChatResponse{}, err
	}
	s.log.Info("model reply",
		zap.String("model", s.model),
		zap.Duration("took", time.Since(start)),
		zap.Bool("hasModel", resp.HasModel()),
		zap.Int("steps", len(resp.Steps)))
	return resp, nil
}

// ParseReply reads a model reply. The reply must be a JSON object with a
// message; a reply without modelData is returned as a message only.
func ParseReply(reply string) (schema.ChatResponse, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(stripFence(reply)), &raw); err != nil {
		return schema.ChatResponse{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	msg, _ := raw["message"].(string)
	if strings.TrimSpace(msg) == "" {
		return schema.ChatResponse{}, fmt.Errorf("%w: missing message field", ErrInvalidReply)
	}
	if raw["modelData"] == nil {
		return schema.ChatResponse{Message: msg}, nil
	}
	resp := schema.ChatResponseFromValue(raw)
	resp.Error = false
	return resp, nil
}

// stripFence removes a markdown code fence around the reply, if any.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
