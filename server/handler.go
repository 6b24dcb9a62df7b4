package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"slicer-runner/service/host"
)

func (s *Server) handleExec(c *fiber.Ctx) error {
	body := string(c.Body())
	if body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "script is required"})
	}
	rec := ScriptRecord{
		ID:         uuid.New().String(),
		Language:   languageOf(c.Get("X-Script-Name")),
		Length:     len(body),
		Content:    body,
		RemoteAddr: c.IP(),
		ReceivedAt: time.Now(),
	}
	if err := s.store.Save(c.Context(), rec); err != nil {
		slog.Error("failed to save script", "id", rec.ID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save script"})
	}
	slog.Info("script received", "id", rec.ID, "length", rec.Length, "content_type", c.Get(fiber.HeaderContentType))
	s.hub.Broadcast(rec)
	return c.Status(fiber.StatusOK).JSON(ExecResponse{ID: rec.ID, Length: rec.Length, Status: "received"})
}

// languageOf prefers the optional script name header; bare bodies are what
// Slicer runs, which is python.
func languageOf(name string) string {
	if name != "" {
		return host.LanguageFor(name)
	}
	return "python"
}

func (s *Server) handleGetScript(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid script id format"})
	}
	rec := s.store.Get(c.Context(), id)
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "script not found"})
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

func handleSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (s *Server) handleSocketConn(conn *websocket.Conn) {
	client := s.hub.AddClient(conn)
	defer client.Close()
	slog.Info("watcher connected", "remote_addr", conn.RemoteAddr())

	// Watchers only listen; reading drives close detection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Info("watcher disconnected", "remote_addr", conn.RemoteAddr())
				return
			}
			slog.Debug("watcher read error", "err", err)
			return
		}
	}
}
