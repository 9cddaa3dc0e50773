package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"clubsite/internal/service"
)

// Deps is everything the routes need.
type Deps struct {
	DB            *sql.DB
	Log           *zap.Logger
	Graamys       service.GraamysService
	Events        service.EventService
	Gallery       service.GalleryService
	AdminPassword string
	// Gatherer backs /metrics; nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	gr := api.Group("/graamys")
	gr.Post("/", SubmitNomination(d.Graamys, d.Log))
	gr.Post("/results", GraamysResults(d.Graamys, d.Log))
	gr.Get("/stats", GraamysStats(d.Graamys, d.Log))

	ev := api.Group("/events")
	ev.Get("/", ListEvents(d.Events))
	ev.Get("/next", NextEvent(d.Events))
	ev.Get("/:id", GetEvent(d.Events))
	ev.Get("/:id/ics", EventICS(d.Events))

	gal := api.Group("/gallery")
	gal.Get("/", ListGallery(d.Gallery, d.Log))
	gal.Post("/", requireAdmin(d.AdminPassword), UploadGallery(d.Gallery, d.Log))
	gal.Delete("/*", requireAdmin(d.AdminPassword), DeleteGallery(d.Gallery, d.Log))
}

// HealthCheck godoc
// @Summary Readiness: checks database connectivity
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a dependency-free liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
