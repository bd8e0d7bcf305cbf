// internals/features/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	regDTO "lombaku_backend/internals/features/registrations/dto"
	regService "lombaku_backend/internals/features/registrations/service"
	helper "lombaku_backend/internals/helpers"
	authMw "lombaku_backend/internals/middlewares/auth"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// POST /api/u/registrations
func (h *RegistrationController) Create(c *fiber.Ctx) error {
	var req regDTO.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "event_id tidak valid")
	}
	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	reg, joined, err := regService.CreateRegistration(h.DB, eventID, userID, req.TeamName)
	switch {
	case errors.Is(err, regService.ErrEventNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	case errors.Is(err, regService.ErrEventClosed):
		return fiber.NewError(fiber.StatusConflict, "Event sudah ditutup untuk pendaftaran")
	case errors.Is(err, regService.ErrDuplicateRegistration):
		return fiber.NewError(fiber.StatusConflict, "Kamu sudah terdaftar di event ini")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pendaftaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil",
		regDTO.NewRegistrationResponse(reg, &joined))
}

// GET /api/a/events/:id/registrations
func (h *RegistrationController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	p := helper.ParsePage(c, "registration_created_at", helper.AdminOpts)

	regs, total, err := regService.ListByEvent(h.DB, eventID, p.PerPage, p.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	items := make([]regDTO.RegistrationResponse, 0, len(regs))
	for i := range regs {
		items = append(items, *regDTO.NewRegistrationResponse(&regs[i], nil))
	}
	return helper.Success(c, "OK", fiber.Map{"items": items, "meta": helper.PageMeta(p, total)})
}
