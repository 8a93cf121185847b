// file: internals/features/kost/tenants/model/tenant_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantModel menyimpan identitas penghuni. Nomor KTP/CCCD sengaja tidak
// unik — satu orang boleh tercatat lebih dari sekali (riwayat sewa lama).
type TenantModel struct {
	TenantID uint `gorm:"column:tenant_id;primaryKey;autoIncrement" json:"tenant_id"`

	TenantFullName     string          `gorm:"column:tenant_full_name;type:varchar(120);not null;index:ix_tenant_full_name" json:"tenant_full_name"`
	TenantIDCardNumber *string         `gorm:"column:tenant_id_card_number;type:varchar(20)" json:"tenant_id_card_number,omitempty"`
	TenantPhone        *string         `gorm:"column:tenant_phone;type:varchar(30)" json:"tenant_phone,omitempty"`
	TenantEmail        *string         `gorm:"column:tenant_email;type:varchar(120)" json:"tenant_email,omitempty"`
	TenantHometown     *string         `gorm:"column:tenant_hometown;type:varchar(255)" json:"tenant_hometown,omitempty"`
	TenantBirthDate    *datatypes.Date `gorm:"column:tenant_birth_date" json:"tenant_birth_date,omitempty"`
	TenantGender       *string         `gorm:"column:tenant_gender;type:varchar(10)" json:"tenant_gender,omitempty"`
	TenantOccupation   *string         `gorm:"column:tenant_occupation;type:varchar(120)" json:"tenant_occupation,omitempty"`
	TenantNote         *string         `gorm:"column:tenant_note" json:"tenant_note,omitempty"`

	// URL foto KTP/CCCD (upload ditangani di luar service ini)
	TenantIDCardFrontURL *string `gorm:"column:tenant_id_card_front_url" json:"tenant_id_card_front_url,omitempty"`
	TenantIDCardBackURL  *string `gorm:"column:tenant_id_card_back_url" json:"tenant_id_card_back_url,omitempty"`

	TenantCreatedAt time.Time `gorm:"column:tenant_created_at;not null;default:CURRENT_TIMESTAMP" json:"tenant_created_at"`
	TenantUpdatedAt time.Time `gorm:"column:tenant_updated_at;not null;default:CURRENT_TIMESTAMP" json:"tenant_updated_at"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.TenantCreatedAt.IsZero() {
		m.TenantCreatedAt = now
	}
	m.TenantUpdatedAt = now
	return nil
}

func (m *TenantModel) BeforeUpdate(tx *gorm.DB) error {
	m.TenantUpdatedAt = time.Now()
	return nil
}
