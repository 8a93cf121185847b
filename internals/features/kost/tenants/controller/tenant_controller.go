// file: internals/features/kost/tenants/controller/tenant_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantDTO "kostku_backend/internals/features/kost/tenants/dto"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helper "kostku_backend/internals/helpers"
)

type TenantController struct {
	DB *gorm.DB
}

// GET /api/tenants
func (h *TenantController) ListTenants(c *fiber.Ctx) error {
	var tenants []tenantModel.TenantModel
	if err := h.DB.Order("tenant_full_name").Find(&tenants).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar penghuni")
	}
	return helper.JsonList(c, "Daftar penghuni", tenants)
}

// GET /api/tenants/:id
func (h *TenantController) GetTenant(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	var m tenantModel.TenantModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penghuni")
	}
	return helper.JsonOK(c, "Detail penghuni", m)
}

// POST /api/tenants
func (h *TenantController) CreateTenant(c *fiber.Ctx) error {
	var req tenantDTO.TenantPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tenantModel.TenantModel
	if err := req.ApplyToModel(&m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat penghuni")
	}
	return helper.JsonCreated(c, "Penghuni berhasil dibuat", m)
}

// PUT /api/tenants/:id
func (h *TenantController) UpdateTenant(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req tenantDTO.TenantPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tenantModel.TenantModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penghuni")
	}
	if err := req.ApplyToModel(&m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan penghuni")
	}
	return helper.JsonUpdated(c, "Penghuni berhasil diperbarui", m)
}

// DELETE /api/tenants/:id
func (h *TenantController) DeleteTenant(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.Delete(&tenantModel.TenantModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus penghuni")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penghuni berhasil dihapus", fiber.Map{"tenant_id": id})
}
