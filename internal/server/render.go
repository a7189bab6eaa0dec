package server

import (
	"log/slog"

	"github.com/earlbread/multi-user-blog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// render draws a template inside the base layout. Every page receives the
// current user so the navigation can reflect the session.
func (s *Server) render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = middleware.CurrentUser(c)
	return c.Render(name, data, "layouts/base")
}

// renderServerError logs a storage or rendering failure and answers with the
// generic error page. All failures are terminal for the current request.
func (s *Server) renderServerError(c *fiber.Ctx, err error) error {
	middleware.Logger.Error("request handling failed",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	c.Status(fiber.StatusInternalServerError)
	return s.render(c, "error", nil)
}
