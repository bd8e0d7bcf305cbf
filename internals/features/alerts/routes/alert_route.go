package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertController "lombaku_backend/internals/features/alerts/controller"
)

func AlertUserRoutes(r fiber.Router, db *gorm.DB) {
	h := alertController.NewAlertController(db)
	alerts := r.Group("/alerts")
	alerts.Get("/", h.ListMine)
	alerts.Post("/:id/read", h.MarkRead)
}
