// file: internals/features/billing/meters/controller/meter_reading_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meterDTO "kostku_backend/internals/features/billing/meters/dto"
	meterModel "kostku_backend/internals/features/billing/meters/model"
	helper "kostku_backend/internals/helpers"
)

type MeterReadingController struct {
	DB *gorm.DB
}

// GET /api/meters?month=YYYY-MM
func (h *MeterReadingController) ListMeterReadings(c *fiber.Ctx) error {
	q := h.DB.Model(&meterModel.MeterReadingModel{}).
		Select(`meter_readings.*, r.room_name AS meter_reading_room_name`).
		Joins("LEFT JOIN rooms r ON meter_readings.meter_reading_room_id = r.room_id").
		Order("r.room_name")

	if raw := c.Query("month"); raw != "" {
		month, err := helper.NormalizeMonth(raw)
		if err != nil {
			return err
		}
		q = q.Where("meter_readings.meter_reading_month = ?", month)
	}

	var list []meterDTO.MeterReadingListItem
	if err := q.Scan(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan meteran")
	}
	return helper.JsonList(c, "Catatan meteran", list)
}

// POST /api/meters
// Upsert by (room, month): submit kedua untuk pasangan yang sama menimpa
// indeks lama, bukan membuat baris baru.
func (h *MeterReadingController) UpsertMeterReading(c *fiber.Ctx) error {
	var req meterDTO.UpsertMeterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m meterModel.MeterReadingModel
	created := false
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("meter_reading_room_id = ? AND meter_reading_month = ?",
			req.MeterReadingRoomID, req.MeterReadingMonth).
			First(&m).Error
		switch {
		case err == nil:
			m.MeterReadingElectricPrev = req.MeterReadingElectricPrev
			m.MeterReadingElectricCurr = req.MeterReadingElectricCurr
			m.MeterReadingWaterPrev = req.MeterReadingWaterPrev
			m.MeterReadingWaterCurr = req.MeterReadingWaterCurr
			if err := tx.Save(&m).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui catatan meteran")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = *req.ToModel()
			if err := tx.Create(&m).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan catatan meteran")
			}
			created = true
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek catatan meteran")
		}
		return nil
	}); err != nil {
		return err
	}

	if created {
		return helper.JsonCreated(c, "Catatan meteran tersimpan", m)
	}
	return helper.JsonUpdated(c, "Catatan meteran diperbarui", m)
}

// PUT /api/meters/:id
func (h *MeterReadingController) UpdateMeterReading(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req meterDTO.UpdateMeterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m meterModel.MeterReadingModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Catatan meteran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan meteran")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan catatan meteran")
	}
	return helper.JsonUpdated(c, "Catatan meteran diperbarui", m)
}
