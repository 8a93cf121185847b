// file: internals/features/kost/settings/route/setting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "kostku_backend/internals/features/kost/settings/controller"
)

func SettingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &settingController.SettingController{DB: db}

	r.Get("/settings", ctl.GetSetting)
	r.Put("/settings", ctl.UpdateSetting)
}
