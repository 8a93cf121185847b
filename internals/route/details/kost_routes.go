// file: internals/route/details/kost_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractRoute "kostku_backend/internals/features/kost/contracts/route"
	roomRoute "kostku_backend/internals/features/kost/rooms/route"
	settingRoute "kostku_backend/internals/features/kost/settings/route"
	tenantRoute "kostku_backend/internals/features/kost/tenants/route"
)

// KostRoutes: data pokok kost (kamar, penghuni, kontrak, settings).
func KostRoutes(api fiber.Router, db *gorm.DB) {
	settingRoute.SettingRoutes(api, db)
	roomRoute.RoomRoutes(api, db)
	tenantRoute.TenantRoutes(api, db)
	contractRoute.ContractRoutes(api, db)
}
