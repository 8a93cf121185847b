// file: internals/features/billing/deposits/model/deposit_transaction_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis transaksi deposit
// =========================================================

type DepositKind string

const (
	DepositKindCollect DepositKind = "collect" // terima deposit
	DepositKindReturn  DepositKind = "return"  // kembalikan ke penghuni
	DepositKindDeduct  DepositKind = "deduct"  // potong (kerusakan dsb)
)

func ValidDepositKind(k DepositKind) bool {
	switch k {
	case DepositKindCollect, DepositKindReturn, DepositKindDeduct:
		return true
	}
	return false
}

// DepositTransactionModel adalah ledger append-only per kontrak.
// Deposit efektif = Σ collect − Σ (return + deduct); boleh minus,
// tidak divalidasi.
type DepositTransactionModel struct {
	DepositID uint `gorm:"column:deposit_id;primaryKey;autoIncrement" json:"deposit_id"`

	DepositContractID uint `gorm:"column:deposit_contract_id;not null;index:ix_deposit_contract" json:"deposit_contract_id"`
	DepositRoomID     uint `gorm:"column:deposit_room_id;not null;index:ix_deposit_room" json:"deposit_room_id"`

	DepositAmount int            `gorm:"column:deposit_amount;not null;check:deposit_amount>=0" json:"deposit_amount"`
	DepositKind   DepositKind    `gorm:"column:deposit_kind;type:varchar(10);not null" json:"deposit_kind"`
	DepositNote   *string        `gorm:"column:deposit_note" json:"deposit_note,omitempty"`
	DepositDate   datatypes.Date `gorm:"column:deposit_date;not null" json:"deposit_date"`

	DepositCreatedAt time.Time `gorm:"column:deposit_created_at;not null;default:CURRENT_TIMESTAMP" json:"deposit_created_at"`
}

func (DepositTransactionModel) TableName() string {
	return "deposits"
}

func (m *DepositTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.DepositCreatedAt.IsZero() {
		m.DepositCreatedAt = time.Now()
	}
	return nil
}
