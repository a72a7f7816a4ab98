// Package server exposes the relay over HTTP.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// Chatter answers chat messages.
type Chatter interface {
	Chat(ctx context.Context, msg string) (schema.ChatResponse, error)
	Mock() bool
}

// Config holds HTTP server settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ChatTimeout  time.Duration // upper bound for one model round trip
	AllowOrigins []string
	RateLimit    float64 // chat requests per second per client, 0 disables
	RateBurst    int
}

// Server is the relay HTTP server.
type Server struct {
	cfg  Config
	chat Chatter
	app  *fiber.App
	log  *zap.Logger
}

// New builds the fiber app and its routes.
func New(cfg Config, chat Chatter) *Server {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	s := &Server{
		cfg:  cfg,
		chat: chat,
		log:  logger.Named("server"),
	}

	s.app = fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "how2build relay",
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestID())
	s.app.Use(accessLog(s.log))
	s.app.Use(corsHandler(cfg.AllowOrigins))

	s.app.Get("/health/live", liveness)
	s.app.Get("/health/ready", s.readiness)

	if cfg.RateLimit > 0 {
		s.app.Use("/api/chat", newRateLimiter(cfg.RateLimit, cfg.RateBurst).handler())
	}
	s.app.All("/api/chat", s.handleChat)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the app is shut down.
func (s *Server) Listen() error {
	s.log.Info("listening", zap.String("addr", s.cfg.Addr), zap.Bool("mock", s.chat.Mock()))
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
