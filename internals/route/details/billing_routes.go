// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	depositRoute "kostku_backend/internals/features/billing/deposits/route"
	invoiceRoute "kostku_backend/internals/features/billing/invoices/route"
	meterRoute "kostku_backend/internals/features/billing/meters/route"
)

// BillingRoutes: meteran, tagihan (termasuk penunggak), dan deposit.
func BillingRoutes(api fiber.Router, db *gorm.DB) {
	meterRoute.MeterReadingRoutes(api, db)
	invoiceRoute.InvoiceRoutes(api, db)
	depositRoute.DepositRoutes(api, db)
}
