// file: internals/features/billing/invoices/service/overdue_service.go
package service

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

// OverdueItem = tagihan telat + kontak penghuni untuk ditagih.
type OverdueItem struct {
	invoiceModel.InvoiceModel
	InvoiceRoomName    *string `json:"invoice_room_name,omitempty" gorm:"column:invoice_room_name"`
	InvoiceTenantName  *string `json:"invoice_tenant_name,omitempty" gorm:"column:invoice_tenant_name"`
	InvoiceTenantPhone *string `json:"invoice_tenant_phone,omitempty" gorm:"column:invoice_tenant_phone"`

	DaysOverdue int `json:"days_overdue" gorm:"-"`
	Outstanding int `json:"outstanding" gorm:"-"`
}

type OverdueSummary struct {
	TotalOutstanding int           `json:"total_outstanding"`
	Count            int           `json:"count"`
	Items            []OverdueItem `json:"items"`
}

// OverdueInvoices memilih tagihan belum lunas dengan jatuh tempo sebelum
// asOf, urut jatuh tempo naik (paling lama nunggak di atas). Selisih hari
// dihitung kalender-harian, bukan per bulan.
func OverdueInvoices(db *gorm.DB, asOf datatypes.Date) (OverdueSummary, error) {
	summary := OverdueSummary{Items: []OverdueItem{}}

	err := db.Model(&invoiceModel.InvoiceModel{}).
		Select(`invoices.*,
			r.room_name AS invoice_room_name,
			t.tenant_full_name AS invoice_tenant_name,
			t.tenant_phone AS invoice_tenant_phone`).
		Joins("LEFT JOIN rooms r ON invoices.invoice_room_id = r.room_id").
		Joins("LEFT JOIN contracts ct ON invoices.invoice_contract_id = ct.contract_id").
		Joins("LEFT JOIN tenants t ON ct.contract_tenant_id = t.tenant_id").
		Where("invoices.invoice_status <> ? AND invoices.invoice_due_date < ?",
			invoiceModel.InvoiceStatusPaid, asOf).
		Order("invoices.invoice_due_date ASC").
		Scan(&summary.Items).Error
	if err != nil {
		return summary, err
	}

	for i := range summary.Items {
		it := &summary.Items[i]
		it.DaysOverdue = helperTime.DaysBetween(asOf, it.InvoiceDueDate)
		it.Outstanding = it.InvoiceModel.Outstanding()
		summary.TotalOutstanding += it.Outstanding
	}
	summary.Count = len(summary.Items)
	return summary, nil
}
