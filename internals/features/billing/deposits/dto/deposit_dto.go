// file: internals/features/billing/deposits/dto/deposit_dto.go
package dto

import (
	"strings"

	model "kostku_backend/internals/features/billing/deposits/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST: Create (POST /api/deposits)
   ========================================================= */

type CreateDepositRequest struct {
	DepositContractID uint `json:"deposit_contract_id" validate:"required"`
	DepositRoomID     uint `json:"deposit_room_id" validate:"required"`

	DepositAmount int               `json:"deposit_amount" validate:"required,min=0"`
	DepositKind   model.DepositKind `json:"deposit_kind" validate:"required,oneof=collect return deduct"`
	DepositNote   *string           `json:"deposit_note"`

	// Kosong → tanggal hari ini
	DepositDate *string `json:"deposit_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateDepositRequest) ToModel() (*model.DepositTransactionModel, error) {
	m := &model.DepositTransactionModel{
		DepositContractID: r.DepositContractID,
		DepositRoomID:     r.DepositRoomID,
		DepositAmount:     r.DepositAmount,
		DepositKind:       r.DepositKind,
		DepositDate:       helperTime.Today(),
	}
	if r.DepositNote != nil {
		n := strings.TrimSpace(*r.DepositNote)
		if n != "" {
			m.DepositNote = &n
		}
	}
	if r.DepositDate != nil && *r.DepositDate != "" {
		d, err := helperTime.ParseDate(*r.DepositDate)
		if err != nil {
			return nil, err
		}
		m.DepositDate = d
	}
	return m, nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type DepositListItem struct {
	model.DepositTransactionModel
	DepositRoomName   *string `json:"deposit_room_name,omitempty" gorm:"column:deposit_room_name"`
	DepositTenantName *string `json:"deposit_tenant_name,omitempty" gorm:"column:deposit_tenant_name"`
}
