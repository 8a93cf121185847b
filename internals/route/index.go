// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "kostku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== KOST (master data) =====================
	log.Println("[INFO] Setting up KostRoutes...")
	routeDetails.KostRoutes(api, db)

	// ===================== BILLING =====================
	log.Println("[INFO] Setting up BillingRoutes...")
	routeDetails.BillingRoutes(api, db)

	// ===================== HOME =====================
	log.Println("[INFO] Setting up HomeRoutes...")
	routeDetails.HomeRoutes(api, db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
