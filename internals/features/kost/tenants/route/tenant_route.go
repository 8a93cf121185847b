// file: internals/features/kost/tenants/route/tenant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantController "kostku_backend/internals/features/kost/tenants/controller"
)

func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &tenantController.TenantController{DB: db}

	r.Get("/tenants", ctl.ListTenants)
	r.Post("/tenants", ctl.CreateTenant)
	r.Get("/tenants/:id", ctl.GetTenant)
	r.Put("/tenants/:id", ctl.UpdateTenant)
	r.Delete("/tenants/:id", ctl.DeleteTenant)
}
