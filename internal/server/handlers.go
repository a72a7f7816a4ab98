package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/relay"
)

// Client-facing error messages.
const (
	msgRequired     = "Message is required"
	msgBadBody      = "Request body must be a JSON object"
	msgNotAllowed   = "Method not allowed, only POST requests are accepted"
	msgNoAPIKey     = "API key not configured. Please contact the administrator."
	msgInvalidReply = "Error parsing LLM response. Please try rephrasing your question."
	msgProcessing   = "Error processing your request: "
)

func errorBody(msg string) fiber.Map {
	return fiber.Map{"message": msg, "error": true}
}

func (s *Server) handleChat(c fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodPost:
	case fiber.MethodOptions:
		return c.JSON(fiber.Map{"message": "ok"})
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(errorBody(msgNotAllowed))
	}

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(msgBadBody))
	}
	msg, _ := body["message"].(string)
	if strings.TrimSpace(msg) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(msgRequired))
	}

	ctx := c.Context()
	if s.cfg.ChatTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ChatTimeout)
		defer cancel()
	}

	resp, err := s.chat.Chat(ctx, msg)
	if err != nil {
		s.log.Error("chat failed", zap.String("id", requestIDOf(c)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(chatErrorMessage(err)))
	}
	return c.JSON(resp)
}

func chatErrorMessage(err error) string {
	switch {
	case errors.Is(err, relay.ErrEmptyMessage):
		return msgRequired
	case errors.Is(err, relay.ErrNoAPIKey):
		return msgNoAPIKey
	case errors.Is(err, relay.ErrInvalidReply):
		return msgInvalidReply
	default:
		return msgProcessing + err.Error()
	}
}

func liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func (s *Server) readiness(c fiber.Ctx) error {
	mode := "llm"
	if s.chat.Mock() {
		mode = "mock"
	}
	return c.JSON(fiber.Map{"status": "ready", "mode": mode})
}

// handleError renders errors that escape handlers, including recovered panics.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("unhandled error", zap.String("id", requestIDOf(c)), zap.Error(err))
	}
	return c.Status(code).JSON(errorBody(err.Error()))
}
