// file: internals/features/kost/contracts/route/contract_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractController "kostku_backend/internals/features/kost/contracts/controller"
)

func ContractRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &contractController.ContractController{DB: db}

	r.Get("/contracts", ctl.ListContracts)
	r.Post("/contracts", ctl.CreateContract)
	r.Get("/contracts/:id", ctl.GetContract)
	r.Put("/contracts/:id", ctl.UpdateContract)
	r.Delete("/contracts/:id", ctl.DeleteContract)
}
