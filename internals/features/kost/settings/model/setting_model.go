// file: internals/features/kost/settings/model/setting_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Tarif default dipakai bila kolom settings kosong (0) — angka yang sama
// dengan seed awal, supaya generate tagihan tetap jalan di instalasi baru.
const (
	DefaultElectricRate = 3500
	DefaultWaterRate    = 25000
	DefaultWifiFee      = 50000
	DefaultTrashFee     = 20000
	DefaultDueDay       = 5
)

// SettingModel adalah baris tunggal (id=1) konfigurasi kost:
// identitas + harga satuan + tanggal jatuh tempo bulanan.
type SettingModel struct {
	SettingID uint `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`

	SettingKostName string `gorm:"column:setting_kost_name;type:varchar(120);not null;default:''" json:"setting_kost_name"`
	SettingAddress  string `gorm:"column:setting_address;type:varchar(255);not null;default:''" json:"setting_address"`
	SettingPhone    string `gorm:"column:setting_phone;type:varchar(30);not null;default:''" json:"setting_phone"`

	// Harga satuan (VND)
	SettingElectricRate int `gorm:"column:setting_electric_rate;not null;default:3500" json:"setting_electric_rate"`
	SettingWaterRate    int `gorm:"column:setting_water_rate;not null;default:25000" json:"setting_water_rate"`
	SettingWifiFee      int `gorm:"column:setting_wifi_fee;not null;default:50000" json:"setting_wifi_fee"`
	SettingTrashFee     int `gorm:"column:setting_trash_fee;not null;default:20000" json:"setting_trash_fee"`

	// Tanggal tagih tiap bulan (1–28)
	SettingDueDay int `gorm:"column:setting_due_day;not null;default:5" json:"setting_due_day"`

	SettingCreatedAt time.Time `gorm:"column:setting_created_at;not null;default:CURRENT_TIMESTAMP" json:"setting_created_at"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;not null;default:CURRENT_TIMESTAMP" json:"setting_updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}

func (m *SettingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SettingCreatedAt.IsZero() {
		m.SettingCreatedAt = now
	}
	m.SettingUpdatedAt = now
	return nil
}

func (m *SettingModel) BeforeUpdate(tx *gorm.DB) error {
	m.SettingUpdatedAt = time.Now()
	return nil
}

// DefaultSetting membuat baris settings awal (seed saat migrate).
func DefaultSetting() *SettingModel {
	return &SettingModel{
		SettingID:           1,
		SettingKostName:     "Kost Hoàn Mỹ",
		SettingElectricRate: DefaultElectricRate,
		SettingWaterRate:    DefaultWaterRate,
		SettingWifiFee:      DefaultWifiFee,
		SettingTrashFee:     DefaultTrashFee,
		SettingDueDay:       DefaultDueDay,
	}
}
