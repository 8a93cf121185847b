// file: internals/features/home/route/home_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "kostku_backend/internals/features/home/controller"
)

func HomeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &homeController.HomeController{DB: db}

	r.Get("/statistics", ctl.GetStatistics)
	r.Get("/dashboard", ctl.GetDashboard)
}
