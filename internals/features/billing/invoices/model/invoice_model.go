// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status tagihan
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// =========================================================
// MODEL
// =========================================================

// InvoiceModel: satu tagihan per (kontrak, bulan). Unique index menutup
// race dua generate bersamaan untuk bulan yang sama.
type InvoiceModel struct {
	InvoiceID uint `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`

	InvoiceContractID uint   `gorm:"column:invoice_contract_id;not null;uniqueIndex:uniq_invoice_contract_month,priority:1" json:"invoice_contract_id"`
	InvoiceRoomID     uint   `gorm:"column:invoice_room_id;not null;index:ix_invoice_room" json:"invoice_room_id"`
	InvoiceMonth      string `gorm:"column:invoice_month;type:varchar(7);not null;uniqueIndex:uniq_invoice_contract_month,priority:2;index:ix_invoice_month" json:"invoice_month"`

	// Rincian biaya. Listrik/air bisa minus bila indeks meteran terbalik —
	// diteruskan apa adanya (lihat MeterReadingModel).
	InvoiceRentAmount     int     `gorm:"column:invoice_rent_amount;not null;default:0" json:"invoice_rent_amount"`
	InvoiceElectricAmount int     `gorm:"column:invoice_electric_amount;not null;default:0" json:"invoice_electric_amount"`
	InvoiceWaterAmount    int     `gorm:"column:invoice_water_amount;not null;default:0" json:"invoice_water_amount"`
	InvoiceWifiAmount     int     `gorm:"column:invoice_wifi_amount;not null;default:0" json:"invoice_wifi_amount"`
	InvoiceTrashAmount    int     `gorm:"column:invoice_trash_amount;not null;default:0" json:"invoice_trash_amount"`
	InvoiceMiscAmount     int     `gorm:"column:invoice_misc_amount;not null;default:0" json:"invoice_misc_amount"`
	InvoiceMiscNote       *string `gorm:"column:invoice_misc_note" json:"invoice_misc_note,omitempty"`

	// Selalu dihitung ulang dari rincian, tidak pernah diedit langsung.
	InvoiceTotalAmount int `gorm:"column:invoice_total_amount;not null;default:0" json:"invoice_total_amount"`

	InvoiceAmountPaid int             `gorm:"column:invoice_amount_paid;not null;default:0" json:"invoice_amount_paid"`
	InvoicePaidDate   *datatypes.Date `gorm:"column:invoice_paid_date" json:"invoice_paid_date,omitempty"`
	InvoiceStatus     InvoiceStatus   `gorm:"column:invoice_status;type:varchar(20);not null;default:'unpaid';index:ix_invoice_status" json:"invoice_status"`
	InvoiceDueDate    datatypes.Date  `gorm:"column:invoice_due_date;not null;index:ix_invoice_due_date" json:"invoice_due_date"`

	InvoiceCreatedAt time.Time `gorm:"column:invoice_created_at;not null;default:CURRENT_TIMESTAMP" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `gorm:"column:invoice_updated_at;not null;default:CURRENT_TIMESTAMP" json:"invoice_updated_at"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

// RecalcTotal menjumlahkan seluruh rincian biaya.
func (m *InvoiceModel) RecalcTotal() {
	m.InvoiceTotalAmount = m.InvoiceRentAmount +
		m.InvoiceElectricAmount +
		m.InvoiceWaterAmount +
		m.InvoiceWifiAmount +
		m.InvoiceTrashAmount +
		m.InvoiceMiscAmount
}

// Outstanding = total − sudah dibayar.
func (m *InvoiceModel) Outstanding() int {
	return m.InvoiceTotalAmount - m.InvoiceAmountPaid
}
