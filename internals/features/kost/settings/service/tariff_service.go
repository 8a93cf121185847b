// file: internals/features/kost/settings/service/tariff_service.go
package service

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	helperTime "kostku_backend/internals/helpers/dbtime"
	settingModel "kostku_backend/internals/features/kost/settings/model"
)

// Tariff adalah potret harga satuan saat ini. Diambil SEKALI per batch
// generate tagihan — perubahan settings di tengah batch tidak ikut.
type Tariff struct {
	ElectricRate int `json:"electric_rate"`
	WaterRate    int `json:"water_rate"`
	WifiFee      int `json:"wifi_fee"`
	TrashFee     int `json:"trash_fee"`
	DueDay       int `json:"due_day"`
}

// ResolveTariff membaca baris settings singleton; kolom kosong (0)
// jatuh ke default tetap, dan bila baris belum ada seluruhnya default.
func ResolveTariff(db *gorm.DB) (Tariff, error) {
	var s settingModel.SettingModel
	if err := db.First(&s, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Tariff{
				ElectricRate: settingModel.DefaultElectricRate,
				WaterRate:    settingModel.DefaultWaterRate,
				WifiFee:      settingModel.DefaultWifiFee,
				TrashFee:     settingModel.DefaultTrashFee,
				DueDay:       settingModel.DefaultDueDay,
			}, nil
		}
		return Tariff{}, err
	}

	t := Tariff{
		ElectricRate: s.SettingElectricRate,
		WaterRate:    s.SettingWaterRate,
		WifiFee:      s.SettingWifiFee,
		TrashFee:     s.SettingTrashFee,
		DueDay:       s.SettingDueDay,
	}
	if t.ElectricRate == 0 {
		t.ElectricRate = settingModel.DefaultElectricRate
	}
	if t.WaterRate == 0 {
		t.WaterRate = settingModel.DefaultWaterRate
	}
	if t.WifiFee == 0 {
		t.WifiFee = settingModel.DefaultWifiFee
	}
	if t.TrashFee == 0 {
		t.TrashFee = settingModel.DefaultTrashFee
	}
	if t.DueDay == 0 {
		t.DueDay = settingModel.DefaultDueDay
	}
	return t, nil
}

// DueDateFor menggabungkan bulan "YYYY-MM" dengan tanggal tagih (zero-padded).
func (t Tariff) DueDateFor(month string) (datatypes.Date, error) {
	return helperTime.ParseDate(fmt.Sprintf("%s-%02d", month, t.DueDay))
}
