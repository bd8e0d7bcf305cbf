package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accController "lombaku_backend/internals/features/accommodations/controller"
)

func AccommodationAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := accController.NewAccommodationController(db)
	acc := r.Group("/accommodations")
	acc.Post("/", h.Create)
	acc.Patch("/:id/availability", h.UpdateAvailability)
}

func AccommodationUserRoutes(r fiber.Router, db *gorm.DB) {
	h := accController.NewAccommodationController(db)
	r.Post("/accommodation-requests", h.Request)
	r.Post("/accommodation-requests/:id/cancel", h.Cancel)
	r.Get("/accommodation-requests", h.ListMine)
}

func AccommodationAllRoutes(r fiber.Router, db *gorm.DB) {
	h := accController.NewAccommodationController(db)
	r.Get("/accommodations", h.List)
}
