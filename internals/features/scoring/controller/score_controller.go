// internals/features/scoring/controller/score_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scoreDTO "lombaku_backend/internals/features/scoring/dto"
	scoreService "lombaku_backend/internals/features/scoring/service"
	helper "lombaku_backend/internals/helpers"
	authMw "lombaku_backend/internals/middlewares/auth"
)

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/u/scores (juri)
func (h *ScoreController) Submit(c *fiber.Ctx) error {
	var req scoreDTO.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	judgeID := authMw.UserID(c)
	if judgeID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	m, err := req.ToModel(judgeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	saved, err := scoreService.SubmitScore(h.DB, m)
	switch {
	case errors.Is(err, scoreService.ErrScoreValue):
		return fiber.NewError(fiber.StatusBadRequest, "Nilai skor tidak valid")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan skor")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Skor tersimpan", scoreDTO.NewScoreResponse(saved))
}

// POST /api/a/events/:id/declare-winners?round_id=...
func (h *ScoreController) DeclareWinners(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var roundID *uuid.UUID
	if raw := c.Query("round_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "round_id tidak valid")
		}
		roundID = &id
	}

	winners, err := scoreService.DeclareWinners(h.DB, eventID, roundID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menetapkan pemenang")
	}

	return helper.Success(c, "Pemenang ditetapkan", fiber.Map{"winners": winners})
}

// GET /api/public/events/:id/scores?round_id=...
func (h *ScoreController) ListByScope(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var roundID *uuid.UUID
	if raw := c.Query("round_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "round_id tidak valid")
		}
		roundID = &id
	}

	p := helper.ParsePage(c, "score_created_at", helper.DefaultOpts)
	scores, total, err := scoreService.ListScores(h.DB, eventID, roundID, p.PerPage, p.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil skor")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": scoreDTO.NewScoreResponses(scores),
		"meta":  helper.PageMeta(p, total),
	})
}
