// file: internals/features/billing/meters/route/meter_reading_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meterController "kostku_backend/internals/features/billing/meters/controller"
)

func MeterReadingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &meterController.MeterReadingController{DB: db}

	r.Get("/meters", ctl.ListMeterReadings)
	r.Post("/meters", ctl.UpsertMeterReading)
	r.Put("/meters/:id", ctl.UpdateMeterReading)
}
