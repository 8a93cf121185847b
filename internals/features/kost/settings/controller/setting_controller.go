// file: internals/features/kost/settings/controller/setting_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingDTO "kostku_backend/internals/features/kost/settings/dto"
	settingModel "kostku_backend/internals/features/kost/settings/model"
	helper "kostku_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

// GET /api/settings
// Baris singleton; bila hilang (DB baru dipindah tangan) ditanam ulang.
func (h *SettingController) GetSetting(c *fiber.Ctx) error {
	var s settingModel.SettingModel
	if err := h.DB.First(&s, 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca settings")
		}
		s = *settingModel.DefaultSetting()
		if err := h.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menanam settings default")
		}
	}
	return helper.JsonOK(c, "Settings", s)
}

// PUT /api/settings
func (h *SettingController) UpdateSetting(c *fiber.Ctx) error {
	var req settingDTO.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SettingKostName = strings.TrimSpace(req.SettingKostName)
	req.SettingAddress = strings.TrimSpace(req.SettingAddress)
	req.SettingPhone = strings.TrimSpace(req.SettingPhone)

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var s settingModel.SettingModel
	if err := h.DB.First(&s, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s = *settingModel.DefaultSetting()
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca settings")
		}
	}
	req.ApplyToModel(&s)

	if err := h.DB.Save(&s).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan settings")
	}
	return helper.JsonUpdated(c, "Settings berhasil disimpan", s)
}
