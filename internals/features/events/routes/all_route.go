package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evController "lombaku_backend/internals/features/events/controller"
)

// Route publik: baca event & ronde untuk dashboard
func EventAllRoutes(r fiber.Router, db *gorm.DB) {
	h := evController.NewEventController(db)

	events := r.Group("/events")
	events.Get("/", h.List)
	events.Get("/:id", h.GetByID)
	events.Get("/:id/rounds", h.ListRounds)
}
