// file: internals/features/billing/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "kostku_backend/internals/features/billing/invoices/controller"
)

func InvoiceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &invoiceController.InvoiceController{DB: db}

	r.Get("/invoices", ctl.ListInvoices)
	r.Post("/invoices/generate", ctl.GenerateInvoices)
	r.Get("/invoices/:id", ctl.GetInvoice)
	r.Put("/invoices/:id/pay", ctl.PayInvoice)
	r.Put("/invoices/:id", ctl.UpdateInvoice)
	r.Delete("/invoices/:id", ctl.DeleteInvoice)

	r.Get("/overdue-invoices", ctl.OverdueInvoices)
}
