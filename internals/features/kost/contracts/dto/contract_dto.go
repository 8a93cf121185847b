// file: internals/features/kost/contracts/dto/contract_dto.go
package dto

import (
	"strings"

	model "kostku_backend/internals/features/kost/contracts/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateContractRequest struct {
	ContractRoomID   uint `json:"contract_room_id" validate:"required"`
	ContractTenantID uint `json:"contract_tenant_id" validate:"required"`

	ContractStartDate string  `json:"contract_start_date" validate:"required,datetime=2006-01-02"`
	ContractEndDate   *string `json:"contract_end_date" validate:"omitempty,datetime=2006-01-02"`

	ContractMonthlyRent int `json:"contract_monthly_rent" validate:"min=0"`
	ContractDeposit     int `json:"contract_deposit" validate:"min=0"`

	ContractBillingCycleMonths *int    `json:"contract_billing_cycle_months" validate:"omitempty,min=1"`
	ContractNote               *string `json:"contract_note"`
}

func (r *CreateContractRequest) ToModel() (*model.ContractModel, error) {
	start, err := helperTime.ParseDate(r.ContractStartDate)
	if err != nil {
		return nil, err
	}

	m := &model.ContractModel{
		ContractRoomID:             r.ContractRoomID,
		ContractTenantID:           r.ContractTenantID,
		ContractStartDate:          start,
		ContractMonthlyRent:        r.ContractMonthlyRent,
		ContractDeposit:            r.ContractDeposit,
		ContractBillingCycleMonths: 1,
		ContractStatus:             model.ContractStatusActive,
		ContractNote:               r.ContractNote,
	}
	if r.ContractBillingCycleMonths != nil {
		m.ContractBillingCycleMonths = *r.ContractBillingCycleMonths
	}
	if r.ContractEndDate != nil && *r.ContractEndDate != "" {
		end, err := helperTime.ParseDate(*r.ContractEndDate)
		if err != nil {
			return nil, err
		}
		m.ContractEndDate = &end
	}
	return m, nil
}

/* =========================================================
   REQUEST: Update
   ========================================================= */

type UpdateContractRequest struct {
	ContractRoomID   uint `json:"contract_room_id" validate:"required"`
	ContractTenantID uint `json:"contract_tenant_id" validate:"required"`

	ContractStartDate string  `json:"contract_start_date" validate:"required,datetime=2006-01-02"`
	ContractEndDate   *string `json:"contract_end_date" validate:"omitempty,datetime=2006-01-02"`

	ContractMonthlyRent int `json:"contract_monthly_rent" validate:"min=0"`
	ContractDeposit     int `json:"contract_deposit" validate:"min=0"`

	ContractBillingCycleMonths int                  `json:"contract_billing_cycle_months" validate:"min=1"`
	ContractStatus             model.ContractStatus `json:"contract_status" validate:"required"`
	ContractNote               *string              `json:"contract_note"`
}

func (r *UpdateContractRequest) ApplyToModel(m *model.ContractModel) error {
	start, err := helperTime.ParseDate(r.ContractStartDate)
	if err != nil {
		return err
	}
	m.ContractRoomID = r.ContractRoomID
	m.ContractTenantID = r.ContractTenantID
	m.ContractStartDate = start
	m.ContractMonthlyRent = r.ContractMonthlyRent
	m.ContractDeposit = r.ContractDeposit
	m.ContractBillingCycleMonths = r.ContractBillingCycleMonths
	m.ContractStatus = r.ContractStatus

	if r.ContractNote != nil {
		n := strings.TrimSpace(*r.ContractNote)
		if n == "" {
			m.ContractNote = nil
		} else {
			m.ContractNote = &n
		}
	} else {
		m.ContractNote = nil
	}

	m.ContractEndDate = nil
	if r.ContractEndDate != nil && *r.ContractEndDate != "" {
		end, err := helperTime.ParseDate(*r.ContractEndDate)
		if err != nil {
			return err
		}
		m.ContractEndDate = &end
	}
	return nil
}

/* =========================================================
   RESPONSE: list/detail + join fields
   ========================================================= */

type ContractListItem struct {
	model.ContractModel
	ContractRoomName         *string `json:"contract_room_name,omitempty" gorm:"column:contract_room_name"`
	ContractTenantName       *string `json:"contract_tenant_name,omitempty" gorm:"column:contract_tenant_name"`
	ContractTenantPhone      *string `json:"contract_tenant_phone,omitempty" gorm:"column:contract_tenant_phone"`
	ContractEffectiveDeposit int     `json:"contract_effective_deposit" gorm:"column:contract_effective_deposit"`
}

type ContractDetail struct {
	ContractListItem
	ContractRoomArea           float64 `json:"contract_room_area" gorm:"column:contract_room_area"`
	ContractTenantIDCardNumber *string `json:"contract_tenant_id_card_number,omitempty" gorm:"column:contract_tenant_id_card_number"`
	ContractTenantHometown     *string `json:"contract_tenant_hometown,omitempty" gorm:"column:contract_tenant_hometown"`
}
