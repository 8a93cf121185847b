// file: internals/features/billing/meters/model/meter_reading_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// MeterReadingModel mencatat indeks listrik & air per (kamar, bulan).
// Maksimal satu baris per pasangan — POST berikutnya menimpa (upsert).
type MeterReadingModel struct {
	MeterReadingID uint `gorm:"column:meter_reading_id;primaryKey;autoIncrement" json:"meter_reading_id"`

	MeterReadingRoomID uint   `gorm:"column:meter_reading_room_id;not null;uniqueIndex:uniq_meter_room_month,priority:1" json:"meter_reading_room_id"`
	MeterReadingMonth  string `gorm:"column:meter_reading_month;type:varchar(7);not null;uniqueIndex:uniq_meter_room_month,priority:2" json:"meter_reading_month"`

	MeterReadingElectricPrev int `gorm:"column:meter_reading_electric_prev;not null;default:0" json:"meter_reading_electric_prev"`
	MeterReadingElectricCurr int `gorm:"column:meter_reading_electric_curr;not null;default:0" json:"meter_reading_electric_curr"`
	MeterReadingWaterPrev    int `gorm:"column:meter_reading_water_prev;not null;default:0" json:"meter_reading_water_prev"`
	MeterReadingWaterCurr    int `gorm:"column:meter_reading_water_curr;not null;default:0" json:"meter_reading_water_curr"`

	MeterReadingCreatedAt time.Time `gorm:"column:meter_reading_created_at;not null;default:CURRENT_TIMESTAMP" json:"meter_reading_created_at"`
	MeterReadingUpdatedAt time.Time `gorm:"column:meter_reading_updated_at;not null;default:CURRENT_TIMESTAMP" json:"meter_reading_updated_at"`
}

func (MeterReadingModel) TableName() string {
	return "meter_readings"
}

func (m *MeterReadingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.MeterReadingCreatedAt.IsZero() {
		m.MeterReadingCreatedAt = now
	}
	m.MeterReadingUpdatedAt = now
	return nil
}

func (m *MeterReadingModel) BeforeUpdate(tx *gorm.DB) error {
	m.MeterReadingUpdatedAt = time.Now()
	return nil
}

// ElectricDelta = indeks baru − indeks lama. Bisa negatif bila indeks
// terbalik saat input; nilai diteruskan apa adanya, tidak di-clamp.
func (m *MeterReadingModel) ElectricDelta() int {
	return m.MeterReadingElectricCurr - m.MeterReadingElectricPrev
}

func (m *MeterReadingModel) WaterDelta() int {
	return m.MeterReadingWaterCurr - m.MeterReadingWaterPrev
}
