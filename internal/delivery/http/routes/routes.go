package routes

import (
	"internhub/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	jobs   *handler.JobsHandler
	users  *handler.UserHandler
}

func NewRegistry(health *handler.HealthHandler, jobs *handler.JobsHandler, users *handler.UserHandler) *Registry {
	return &Registry{health: health, jobs: jobs, users: users}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	if r.jobs != nil {
		r.jobs.RegisterRoutes(v1.Group("/jobs"))
	}
	if r.users != nil {
		r.users.RegisterRoutes(v1.Group("/users"))
	}
}
