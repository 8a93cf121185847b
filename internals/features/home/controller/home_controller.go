// file: internals/features/home/controller/home_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeService "kostku_backend/internals/features/home/service"
	helper "kostku_backend/internals/helpers"
)

type HomeController struct {
	DB *gorm.DB
}

// GET /api/statistics
func (h *HomeController) GetStatistics(c *fiber.Ctx) error {
	stats, err := homeService.BuildStatistics(h.DB, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Statistik", stats)
}

// GET /api/dashboard
func (h *HomeController) GetDashboard(c *fiber.Ctx) error {
	dash, err := homeService.BuildDashboard(h.DB, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung dashboard")
	}
	return helper.JsonOK(c, "Dashboard", dash)
}
