// internals/features/alerts/controller/alert_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alertDTO "lombaku_backend/internals/features/alerts/dto"
	alertService "lombaku_backend/internals/features/alerts/service"
	helper "lombaku_backend/internals/helpers"
	authMw "lombaku_backend/internals/middlewares/auth"
)

type AlertController struct {
	DB *gorm.DB
}

func NewAlertController(db *gorm.DB) *AlertController {
	return &AlertController{DB: db}
}

// GET /api/u/alerts
func (h *AlertController) ListMine(c *fiber.Ctx) error {
	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	p := helper.ParsePage(c, "alert_created_at", helper.DefaultOpts)

	alerts, total, err := alertService.ListForUser(h.DB, userID, p.PerPage, p.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": alertDTO.NewAlertResponses(alerts),
		"meta":  helper.PageMeta(p, total),
	})
}

// POST /api/u/alerts/:id/read
func (h *AlertController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	userID := authMw.UserID(c)
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := alertService.MarkRead(h.DB, id, userID); err != nil {
		if helper.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	return helper.Success(c, "Notifikasi ditandai terbaca", fiber.Map{"alert_id": id})
}
