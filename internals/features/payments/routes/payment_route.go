package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payController "lombaku_backend/internals/features/payments/controller"
)

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	h := payController.NewPaymentController(db)
	r.Post("/payments", h.Create)
}

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := payController.NewPaymentController(db)
	r.Patch("/payments/:order_id/status", h.UpdateStatus)
}

// Webhook dipanggil Midtrans tanpa JWT
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	h := payController.NewPaymentController(db)
	r.Post("/payments/webhook/midtrans", h.MidtransWebhook)
}
