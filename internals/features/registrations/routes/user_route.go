package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regController "lombaku_backend/internals/features/registrations/controller"
)

func RegistrationUserRoutes(r fiber.Router, db *gorm.DB) {
	h := regController.NewRegistrationController(db)
	r.Post("/registrations", h.Create)
}

func RegistrationAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := regController.NewRegistrationController(db)
	r.Get("/events/:id/registrations", h.ListByEvent)
}
