package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoreController "lombaku_backend/internals/features/scoring/controller"
	middlewares "lombaku_backend/internals/middlewares"
)

func ScoreUserRoutes(r fiber.Router, db *gorm.DB) {
	h := scoreController.NewScoreController(db)
	r.Post("/scores", middlewares.ScoreSubmitRateLimiter(), h.Submit)
}

func ScoreAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := scoreController.NewScoreController(db)
	r.Post("/events/:id/declare-winners", h.DeclareWinners)
}

func ScoreAllRoutes(r fiber.Router, db *gorm.DB) {
	h := scoreController.NewScoreController(db)
	r.Get("/events/:id/scores", h.ListByScope)
}
