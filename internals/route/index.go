// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accRoutes "lombaku_backend/internals/features/accommodations/routes"
	alertRoutes "lombaku_backend/internals/features/alerts/routes"
	evRoutes "lombaku_backend/internals/features/events/routes"
	payRoutes "lombaku_backend/internals/features/payments/routes"
	regRoutes "lombaku_backend/internals/features/registrations/routes"
	scoreRoutes "lombaku_backend/internals/features/scoring/routes"
	authMw "lombaku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT, read-only untuk dashboard
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	evRoutes.EventAllRoutes(public, db)
	scoreRoutes.ScoreAllRoutes(public, db)
	accRoutes.AccommodationAllRoutes(public, db)

	// WEBHOOK → dipanggil gateway, tanpa JWT
	log.Println("[INFO] Setting up WEBHOOK group...")
	webhook := app.Group("/api")
	payRoutes.PaymentWebhookRoutes(webhook, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	regRoutes.RegistrationUserRoutes(user, db)
	scoreRoutes.ScoreUserRoutes(user, db)
	accRoutes.AccommodationUserRoutes(user, db)
	payRoutes.PaymentUserRoutes(user, db)
	alertRoutes.AlertUserRoutes(user, db)

	// ===================== ADMIN (panitia) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMw.RequireRoles("admin", "organizer"),
	)
	evRoutes.EventAdminRoutes(admin, db)
	regRoutes.RegistrationAdminRoutes(admin, db)
	scoreRoutes.ScoreAdminRoutes(admin, db)
	accRoutes.AccommodationAdminRoutes(admin, db)
	payRoutes.PaymentAdminRoutes(admin, db)
}
