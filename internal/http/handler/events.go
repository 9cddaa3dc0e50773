package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"clubsite/internal/service"
)

// ListEvents godoc
// @Summary List events
// @Produce json
// @Param when query string false "upcoming, past or all"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Router /api/events [get]
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		evs, err := svc.List(c.Query("when", service.FilterAll))
		if err != nil {
			if errors.Is(err, service.ErrInvalidFilter) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "when must be upcoming, past or all")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"success": true, "events": evs})
	}
}

// NextEvent godoc
// @Summary Nearest upcoming event with countdown
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/events/next [get]
func NextEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		next := svc.Next()
		return c.JSON(fiber.Map{"success": true, "event": next.Event, "countdown": next.Countdown})
	}
}

// GetEvent godoc
// @Summary Get one event
// @Produce json
// @Param id path string true "event id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /api/events/{id} [get]
func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := svc.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "event not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"success": true, "event": ev})
	}
}

// EventICS godoc
// @Summary Download an event as an iCalendar file
// @Produce text/calendar
// @Param id path string true "event id"
// @Success 200 {string} string
// @Failure 404 {object} errorPayload
// @Router /api/events/{id}/ics [get]
func EventICS(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		body, err := svc.ICS(id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "event not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.ics"`, id))
		return c.Send(body)
	}
}
