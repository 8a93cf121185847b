// file: internals/features/billing/deposits/route/deposit_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	depositController "kostku_backend/internals/features/billing/deposits/controller"
)

func DepositRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &depositController.DepositController{DB: db}

	r.Get("/deposits", ctl.ListDeposits)
	r.Post("/deposits", ctl.CreateDeposit)
	r.Get("/deposits/contract/:id", ctl.GetEffectiveDeposit)
	r.Delete("/deposits/:id", ctl.DeleteDeposit)
}
