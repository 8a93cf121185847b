// file: internals/features/kost/settings/dto/setting_dto.go
package dto

import (
	model "kostku_backend/internals/features/kost/settings/model"
)

/* =========================================================
   REQUEST: Update (PUT /api/settings)
   ========================================================= */

type UpdateSettingRequest struct {
	SettingKostName string `json:"setting_kost_name" validate:"required,max=120"`
	SettingAddress  string `json:"setting_address"   validate:"max=255"`
	SettingPhone    string `json:"setting_phone"     validate:"max=30"`

	SettingElectricRate int `json:"setting_electric_rate" validate:"min=0"`
	SettingWaterRate    int `json:"setting_water_rate"    validate:"min=0"`
	SettingWifiFee      int `json:"setting_wifi_fee"      validate:"min=0"`
	SettingTrashFee     int `json:"setting_trash_fee"     validate:"min=0"`

	SettingDueDay int `json:"setting_due_day" validate:"required,min=1,max=28"`
}

func (r *UpdateSettingRequest) ApplyToModel(m *model.SettingModel) {
	m.SettingKostName = r.SettingKostName
	m.SettingAddress = r.SettingAddress
	m.SettingPhone = r.SettingPhone
	m.SettingElectricRate = r.SettingElectricRate
	m.SettingWaterRate = r.SettingWaterRate
	m.SettingWifiFee = r.SettingWifiFee
	m.SettingTrashFee = r.SettingTrashFee
	m.SettingDueDay = r.SettingDueDay
}
