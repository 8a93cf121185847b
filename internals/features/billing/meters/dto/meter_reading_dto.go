// file: internals/features/billing/meters/dto/meter_reading_dto.go
package dto

import (
	model "kostku_backend/internals/features/billing/meters/model"
)

/* =========================================================
   REQUEST: upsert by (room, month) — POST /api/meters
   ========================================================= */

type UpsertMeterReadingRequest struct {
	MeterReadingRoomID uint   `json:"meter_reading_room_id" validate:"required"`
	MeterReadingMonth  string `json:"meter_reading_month" validate:"required,datetime=2006-01"`

	MeterReadingElectricPrev int `json:"meter_reading_electric_prev" validate:"min=0"`
	MeterReadingElectricCurr int `json:"meter_reading_electric_curr" validate:"min=0"`
	MeterReadingWaterPrev    int `json:"meter_reading_water_prev" validate:"min=0"`
	MeterReadingWaterCurr    int `json:"meter_reading_water_curr" validate:"min=0"`
}

func (r *UpsertMeterReadingRequest) ToModel() *model.MeterReadingModel {
	return &model.MeterReadingModel{
		MeterReadingRoomID:       r.MeterReadingRoomID,
		MeterReadingMonth:        r.MeterReadingMonth,
		MeterReadingElectricPrev: r.MeterReadingElectricPrev,
		MeterReadingElectricCurr: r.MeterReadingElectricCurr,
		MeterReadingWaterPrev:    r.MeterReadingWaterPrev,
		MeterReadingWaterCurr:    r.MeterReadingWaterCurr,
	}
}

/* =========================================================
   REQUEST: update indeks saja — PUT /api/meters/:id
   ========================================================= */

type UpdateMeterReadingRequest struct {
	MeterReadingElectricPrev int `json:"meter_reading_electric_prev" validate:"min=0"`
	MeterReadingElectricCurr int `json:"meter_reading_electric_curr" validate:"min=0"`
	MeterReadingWaterPrev    int `json:"meter_reading_water_prev" validate:"min=0"`
	MeterReadingWaterCurr    int `json:"meter_reading_water_curr" validate:"min=0"`
}

func (r *UpdateMeterReadingRequest) ApplyToModel(m *model.MeterReadingModel) {
	m.MeterReadingElectricPrev = r.MeterReadingElectricPrev
	m.MeterReadingElectricCurr = r.MeterReadingElectricCurr
	m.MeterReadingWaterPrev = r.MeterReadingWaterPrev
	m.MeterReadingWaterCurr = r.MeterReadingWaterCurr
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MeterReadingListItem struct {
	model.MeterReadingModel
	MeterReadingRoomName *string `json:"meter_reading_room_name,omitempty" gorm:"column:meter_reading_room_name"`
}
