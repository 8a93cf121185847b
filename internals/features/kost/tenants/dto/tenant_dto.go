// file: internals/features/kost/tenants/dto/tenant_dto.go
package dto

import (
	"strings"

	model "kostku_backend/internals/features/kost/tenants/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

// TenantPayload dipakai create dan update penuh (PUT mengganti seluruh field).
type TenantPayload struct {
	TenantFullName     string  `json:"tenant_full_name" validate:"required,max=120"`
	TenantIDCardNumber *string `json:"tenant_id_card_number" validate:"omitempty,max=20"`
	TenantPhone        *string `json:"tenant_phone" validate:"omitempty,max=30"`
	TenantEmail        *string `json:"tenant_email" validate:"omitempty,email,max=120"`
	TenantHometown     *string `json:"tenant_hometown" validate:"omitempty,max=255"`
	TenantBirthDate    *string `json:"tenant_birth_date" validate:"omitempty,datetime=2006-01-02"`
	TenantGender       *string `json:"tenant_gender" validate:"omitempty,oneof=male female other"`
	TenantOccupation   *string `json:"tenant_occupation" validate:"omitempty,max=120"`
	TenantNote         *string `json:"tenant_note"`

	TenantIDCardFrontURL *string `json:"tenant_id_card_front_url" validate:"omitempty,url"`
	TenantIDCardBackURL  *string `json:"tenant_id_card_back_url" validate:"omitempty,url"`
}

func (r *TenantPayload) Normalize() {
	r.TenantFullName = strings.TrimSpace(r.TenantFullName)
	r.TenantIDCardNumber = trimPtr(r.TenantIDCardNumber)
	r.TenantPhone = trimPtr(r.TenantPhone)
	r.TenantEmail = trimPtr(r.TenantEmail)
	r.TenantHometown = trimPtr(r.TenantHometown)
	r.TenantOccupation = trimPtr(r.TenantOccupation)
	r.TenantNote = trimPtr(r.TenantNote)
}

func (r *TenantPayload) ApplyToModel(m *model.TenantModel) error {
	m.TenantFullName = r.TenantFullName
	m.TenantIDCardNumber = r.TenantIDCardNumber
	m.TenantPhone = r.TenantPhone
	m.TenantEmail = r.TenantEmail
	m.TenantHometown = r.TenantHometown
	m.TenantGender = r.TenantGender
	m.TenantOccupation = r.TenantOccupation
	m.TenantNote = r.TenantNote
	m.TenantIDCardFrontURL = r.TenantIDCardFrontURL
	m.TenantIDCardBackURL = r.TenantIDCardBackURL

	m.TenantBirthDate = nil
	if r.TenantBirthDate != nil && *r.TenantBirthDate != "" {
		d, err := helperTime.ParseDate(*r.TenantBirthDate)
		if err != nil {
			return err
		}
		m.TenantBirthDate = &d
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
