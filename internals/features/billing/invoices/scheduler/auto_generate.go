// file: internals/features/billing/invoices/scheduler/auto_generate.go
package scheduler

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	invoiceService "kostku_backend/internals/features/billing/invoices/service"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

// StartInvoiceAutoGenerateScheduler men-generate tagihan bulan berjalan
// sekali sehari bila INVOICE_AUTOGEN=true. Aman dijalankan berulang karena
// generate idempoten per (kontrak, bulan).
func StartInvoiceAutoGenerateScheduler(db *gorm.DB) {
	if os.Getenv("INVOICE_AUTOGEN") != "true" {
		return
	}

	go func() {
		for {
			month := helperTime.MonthOf(time.Now())
			log.Printf("[AUTOGEN] Generate tagihan bulan %s...", month)

			result, err := invoiceService.GenerateMonthlyInvoices(db, month)
			if err != nil {
				log.Printf("[AUTOGEN ERROR] %v", err)
			} else {
				log.Printf("[AUTOGEN] dibuat=%d dilewati=%d gagal=%d",
					result.Created, result.Skipped, len(result.Failures))
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
