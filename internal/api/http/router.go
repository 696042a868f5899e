package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opskit/teamdesk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Teams   *handlers.TeamsHandler
	Tickets *handlers.TicketsHandler
	Users   *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	teams := app.Group("/teams")
	teams.Get("/", cfg.Teams.List)
	teams.Post("/", cfg.Teams.Create)
	teams.Get("/:id", cfg.Teams.Get)
	teams.Put("/:id", cfg.Teams.Update)
	teams.Delete("/:id", cfg.Teams.Delete)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.List)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Delete)

	users := app.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
