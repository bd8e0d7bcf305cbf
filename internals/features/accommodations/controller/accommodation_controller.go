// internals/features/accommodations/controller/accommodation_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accDTO "lombaku_backend/internals/features/accommodations/dto"
	accModel "lombaku_backend/internals/features/accommodations/model"
	accService "lombaku_backend/internals/features/accommodations/service"
	helper "lombaku_backend/internals/helpers"
	authMw "lombaku_backend/internals/middlewares/auth"
)

type AccommodationController struct {
	DB *gorm.DB
}

func NewAccommodationController(db *gorm.DB) *AccommodationController {
	return &AccommodationController{DB: db}
}

/* ===================== ADMIN ===================== */

// POST /api/a/accommodations
func (h *AccommodationController) Create(c *fiber.Ctx) error {
	var req accDTO.CreateAccommodationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat penginapan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penginapan dibuat", accDTO.NewAccommodationResponse(m))
}

// PATCH /api/a/accommodations/:id/availability
func (h *AccommodationController) UpdateAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var req accDTO.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.Model(&accModel.AccommodationModel{}).
		Where("accommodation_id = ?", id).
		Update("accommodation_availability", req.Availability)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui penginapan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Penginapan tidak ditemukan")
	}
	return helper.Success(c, "Ketersediaan diperbarui", fiber.Map{"accommodation_id": id})
}

/* ===================== USER ===================== */

// POST /api/u/accommodation-requests
func (h *AccommodationController) Request(c *fiber.Ctx) error {
	var req accDTO.RequestAccommodationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	m, err := req.ToModel(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "registration_id tidak valid")
	}

	out, err := accService.RequestAccommodation(h.DB, m)
	switch {
	case errors.Is(err, accService.ErrBadDateRange):
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal check-out harus setelah check-in")
	case errors.Is(err, accService.ErrBadPartySize):
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah rombongan tidak valid")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses permintaan penginapan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Permintaan diproses",
		accDTO.NewAccommodationRequestResponse(out))
}

// POST /api/u/accommodation-requests/:id/cancel
func (h *AccommodationController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	out, err := accService.CancelRequest(h.DB, id, userID)
	switch {
	case errors.Is(err, accService.ErrRequestNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Permintaan tidak ditemukan")
	case errors.Is(err, accService.ErrRequestNotPending):
		return fiber.NewError(fiber.StatusConflict, "Permintaan sudah tidak bisa dibatalkan")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan permintaan")
	}
	return helper.Success(c, "Permintaan dibatalkan", accDTO.NewAccommodationRequestResponse(out))
}

// GET /api/u/accommodation-requests
func (h *AccommodationController) ListMine(c *fiber.Ctx) error {
	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	p := helper.ParsePage(c, "request_created_at", helper.DefaultOpts)

	reqs, total, err := accService.ListRequests(h.DB, userID, p.PerPage, p.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil permintaan")
	}
	items := make([]accDTO.AccommodationRequestResponse, 0, len(reqs))
	for i := range reqs {
		items = append(items, *accDTO.NewAccommodationRequestResponse(&reqs[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"items": items, "meta": helper.PageMeta(p, total)})
}

// GET /api/public/accommodations
func (h *AccommodationController) List(c *fiber.Ctx) error {
	var ms []accModel.AccommodationModel
	if err := h.DB.Order("accommodation_capacity ASC").Find(&ms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penginapan")
	}
	items := make([]accDTO.AccommodationResponse, 0, len(ms))
	for i := range ms {
		items = append(items, *accDTO.NewAccommodationResponse(&ms[i]))
	}
	return helper.Success(c, "OK", items)
}
