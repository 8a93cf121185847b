// file: internals/features/kost/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomDTO "kostku_backend/internals/features/kost/rooms/dto"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	helper "kostku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

// GET /api/rooms
// List kamar + flag kontrak aktif + nama penghuni (subquery, sama seperti
// tampilan daftar kamar lama).
func (h *RoomController) ListRooms(c *fiber.Ctx) error {
	var rooms []roomDTO.RoomListItem
	err := h.DB.Model(&roomModel.RoomModel{}).
		Select(`rooms.*,
			(SELECT COUNT(*) FROM contracts c
				WHERE c.contract_room_id = rooms.room_id AND c.contract_status = 'active') > 0 AS room_has_active_contract,
			(SELECT t.tenant_full_name FROM contracts c
				JOIN tenants t ON c.contract_tenant_id = t.tenant_id
				WHERE c.contract_room_id = rooms.room_id AND c.contract_status = 'active'
				LIMIT 1) AS room_tenant_name`).
		Order("rooms.room_name").
		Scan(&rooms).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kamar")
	}
	return helper.JsonList(c, "Daftar kamar", rooms)
}

// GET /api/rooms/:id
func (h *RoomController) GetRoom(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	var m roomModel.RoomModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}
	return helper.JsonOK(c, "Detail kamar", m)
}

// POST /api/rooms
func (h *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req roomDTO.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.RoomName = strings.TrimSpace(req.RoomName)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kamar")
	}
	return helper.JsonCreated(c, "Kamar berhasil dibuat", m)
}

// PUT /api/rooms/:id
func (h *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req roomDTO.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.RoomName = strings.TrimSpace(req.RoomName)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.RoomStatus != nil && !roomModel.ValidRoomStatus(*req.RoomStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kamar tidak dikenal")
	}

	var m roomModel.RoomModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kamar")
	}
	return helper.JsonUpdated(c, "Kamar berhasil diperbarui", m)
}

// DELETE /api/rooms/:id
func (h *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.Delete(&roomModel.RoomModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kamar")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kamar tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kamar berhasil dihapus", fiber.Map{"room_id": id})
}
