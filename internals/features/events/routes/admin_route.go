package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evController "lombaku_backend/internals/features/events/controller"
)

// Route admin/panitia: kelola event + publish
func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := evController.NewEventController(db)

	events := r.Group("/events")
	events.Post("/", h.Create)
	events.Patch("/:id", h.Update)
	events.Post("/:id/publish", h.Publish)
}
