// file: internals/route/details/home_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeRoute "kostku_backend/internals/features/home/route"
)

// HomeRoutes: statistik dan dashboard.
func HomeRoutes(api fiber.Router, db *gorm.DB) {
	homeRoute.HomeRoutes(api, db)
}
