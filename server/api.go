package server

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/multierr"

	"slicer-runner/config"
)

const maxStoredScripts = 256

// Server is a local stand-in for the Slicer WebServer exec endpoint: it
// accepts scripts the same way, records them, and lets watchers follow along.
type Server struct {
	cfg   config.ServeConfig
	store ScriptStorage
	hub   *WatchHub
	app   *fiber.App
}

func New(cfg config.ServeConfig) *Server {
	s := &Server{
		cfg:   cfg,
		store: NewScriptMemoryStorage(maxStoredScripts),
		hub:   NewWatchHub(),
	}
	s.app = s.newApp()
	return s
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             config.MaxScriptSize,
		DisableStartupMessage: true,
	})
	loggerCfg := logger.ConfigDefault
	loggerCfg.Format = "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n"
	app.Use(logger.New(loggerCfg))
	app.Use(limiter.New(limiter.Config{
		Max:        max(s.cfg.RPM, 2),
		Expiration: time.Minute,
	}))

	app.Post("/slicer/exec", s.handleExec)

	rg := app.Group("/api")
	if len(s.cfg.APIKeys) > 0 {
		rg.Use(keyauth.New(keyauth.Config{
			KeyLookup: "header:X-API-Key",
			Validator: s.validateKey,
		}))
	}
	rg.Get("/scripts/:id", s.handleGetScript)
	rg.Get("/socket", handleSocketUpgrade)
	rg.Get("/socket", websocket.New(s.handleSocketConn))
	return app
}

func (s *Server) validateKey(c *fiber.Ctx, key string) (bool, error) {
	hashedKey := sha256.Sum256([]byte(key))
	for _, k := range s.cfg.APIKeys {
		hashedAPIKey := sha256.Sum256([]byte(k))
		if subtle.ConstantTimeCompare(hashedKey[:], hashedAPIKey[:]) == 1 {
			return true, nil
		}
	}
	return false, keyauth.ErrMissingOrMalformedAPIKey
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("stand-in Slicer endpoint listening", "addr", addr, "exec_url", "http://"+addr+"/slicer/exec")
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	slog.Info("server is shutting down")
	s.hub.CloseAll()
	err := s.app.ShutdownWithTimeout(10 * time.Second)
	err = multierr.Append(err, <-errCh)
	if err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
