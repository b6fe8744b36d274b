// Package httpserver exposes the task list API over a single HTTP endpoint.
package httpserver

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/avilov/tasklist/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth  service.AuthService
	tasks service.TaskService
	log   *zap.Logger
}

// New constructs a server with injected services.
func New(auth service.AuthService, tasks service.TaskService, log *zap.Logger) *Server {
	return &Server{auth: auth, tasks: tasks, log: log}
}

// Router builds the fiber application. The whole API lives behind one
// endpoint; queries and mutations are dispatched by the request envelope.
func (s *Server) Router() *fiber.App {
	app := fiber.New()

	app.Use(Recover(s.log))
	app.Use(RequestLogger(s.log))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Post("/api", s.handleAPI)

	return app
}
