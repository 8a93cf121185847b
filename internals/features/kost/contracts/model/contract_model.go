// file: internals/features/kost/contracts/model/contract_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status kontrak
// =========================================================

type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "active"
	ContractStatusExpired ContractStatus = "expired"
	ContractStatusSettled ContractStatus = "settled"
)

func ValidContractStatus(s ContractStatus) bool {
	switch s {
	case ContractStatusActive, ContractStatusExpired, ContractStatusSettled:
		return true
	}
	return false
}

// IsTerminal: expired/settled tidak bisa kembali active.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusExpired || s == ContractStatusSettled
}

// =========================================================
// MODEL
// =========================================================

type ContractModel struct {
	ContractID uint `gorm:"column:contract_id;primaryKey;autoIncrement" json:"contract_id"`

	// FK → rooms / tenants
	ContractRoomID   uint `gorm:"column:contract_room_id;not null;index:ix_contract_room" json:"contract_room_id"`
	ContractTenantID uint `gorm:"column:contract_tenant_id;not null;index:ix_contract_tenant" json:"contract_tenant_id"`

	ContractStartDate datatypes.Date  `gorm:"column:contract_start_date;not null" json:"contract_start_date"`
	ContractEndDate   *datatypes.Date `gorm:"column:contract_end_date" json:"contract_end_date,omitempty"`

	ContractMonthlyRent int `gorm:"column:contract_monthly_rent;not null;default:0;check:contract_monthly_rent>=0" json:"contract_monthly_rent"`

	// Deposit yang dicatat saat teken kontrak; nilai efektif dihitung dari
	// ledger deposits (fallback ke kolom ini bila ledger kosong).
	ContractDeposit int `gorm:"column:contract_deposit;not null;default:0;check:contract_deposit>=0" json:"contract_deposit"`

	ContractBillingCycleMonths int `gorm:"column:contract_billing_cycle_months;not null;default:1" json:"contract_billing_cycle_months"`

	ContractStatus ContractStatus `gorm:"column:contract_status;type:varchar(20);not null;default:'active';index:ix_contract_status" json:"contract_status"`
	ContractNote   *string        `gorm:"column:contract_note" json:"contract_note,omitempty"`

	ContractCreatedAt time.Time `gorm:"column:contract_created_at;not null;default:CURRENT_TIMESTAMP" json:"contract_created_at"`
	ContractUpdatedAt time.Time `gorm:"column:contract_updated_at;not null;default:CURRENT_TIMESTAMP" json:"contract_updated_at"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

func (m *ContractModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ContractCreatedAt.IsZero() {
		m.ContractCreatedAt = now
	}
	m.ContractUpdatedAt = now
	return nil
}

func (m *ContractModel) BeforeUpdate(tx *gorm.DB) error {
	m.ContractUpdatedAt = time.Now()
	return nil
}
