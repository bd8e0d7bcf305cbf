// internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payDTO "lombaku_backend/internals/features/payments/dto"
	payModel "lombaku_backend/internals/features/payments/model"
	payService "lombaku_backend/internals/features/payments/service"
	helper "lombaku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/u/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req payDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID target tidak valid")
	}

	err = payService.CreatePayment(h.DB, m)
	switch {
	case errors.Is(err, payService.ErrPaymentTarget):
		return fiber.NewError(fiber.StatusBadRequest, "Payment harus menunjuk tepat satu target (registration ATAU contract)")
	case errors.Is(err, payService.ErrPaymentAmount):
		return fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran tidak valid")
	case errors.Is(err, payService.ErrTargetNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Target pembayaran tidak ditemukan")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat payment")
	}

	resp := payDTO.NewPaymentResponse(m)

	// Snap token opsional; kegagalan gateway tidak membatalkan payment pending
	if req.PayerName != nil && req.PayerEmail != nil {
		token, redirect, err := payService.GenerateSnapToken(m, *req.PayerName, *req.PayerEmail)
		if err != nil {
			log.Printf("[WARN] Gagal membuat snap token %s: %v", m.PaymentOrderID, err)
		} else {
			resp.SnapToken = &token
			resp.RedirectURL = &redirect
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment dibuat", resp)
}

// POST /api/payments/webhook/midtrans
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := payService.HandlePaymentStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}
	return helper.Success(c, "OK", nil)
}

// PATCH /api/a/payments/:order_id/status (jalur manual panitia)
func (h *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	if orderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id wajib diisi")
	}

	var req payDTO.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	pay, err := payService.ApplyPaymentStatus(h.DB, orderID, payModel.PaymentStatus(req.Status))
	switch {
	case errors.Is(err, payService.ErrPaymentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Payment tidak ditemukan")
	case errors.Is(err, payService.ErrBadTransition):
		return fiber.NewError(fiber.StatusConflict, "Transisi status tidak diizinkan")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui payment")
	}

	return helper.Success(c, "Status payment diperbarui", payDTO.NewPaymentResponse(pay))
}
