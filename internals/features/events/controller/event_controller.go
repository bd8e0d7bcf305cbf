// internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	evDTO "lombaku_backend/internals/features/events/dto"
	evModel "lombaku_backend/internals/features/events/model"
	evService "lombaku_backend/internals/features/events/service"
	helper "lombaku_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req evDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Slug event sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", evDTO.NewEventResponse(m))
}

// PATCH /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req evDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m evModel.EventModel
	if err := h.DB.First(&m, "event_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	req.ApplyToModel(&m)

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.Success(c, "Event diperbarui", evDTO.NewEventResponse(&m))
}

// POST /api/a/events/:id/publish
func (h *EventController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	ev, rounds, err := evService.PublishEvent(h.DB, id)
	switch {
	case errors.Is(err, evService.ErrEventNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	case errors.Is(err, evService.ErrEventCancelled):
		return fiber.NewError(fiber.StatusConflict, "Event yang dibatalkan tidak bisa dipublikasikan")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mempublikasikan event")
	}

	return helper.Success(c, "Event dipublikasikan", evDTO.PublishEventResponse{
		Event:  evDTO.NewEventResponse(ev),
		Rounds: evDTO.NewRoundResponses(rounds),
	})
}

// GET /api/public/events
func (h *EventController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "event_start_time", helper.DefaultOpts,
		"event_start_time", "event_name", "event_created_at")

	q := h.DB.Model(&evModel.EventModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("event_status = ?", strings.ToLower(status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []evModel.EventModel
	if err := q.Order(p.OrderClause()).Limit(p.PerPage).Offset(p.Offset()).Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar event")
	}

	items := make([]evDTO.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, *evDTO.NewEventResponse(&events[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"items": items, "meta": helper.PageMeta(p, total)})
}

// GET /api/public/events/:id
func (h *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m evModel.EventModel
	if err := h.DB.First(&m, "event_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.Success(c, "OK", evDTO.NewEventResponse(&m))
}

// GET /api/public/events/:id/rounds
func (h *EventController) ListRounds(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	rounds, err := evService.ListRounds(h.DB, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ronde")
	}
	return helper.Success(c, "OK", evDTO.NewRoundResponses(rounds))
}
