// file: internals/features/kost/contracts/controller/contract_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractDTO "kostku_backend/internals/features/kost/contracts/dto"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helper "kostku_backend/internals/helpers"
)

type ContractController struct {
	DB *gorm.DB
}

// Subquery deposit efektif: Σ collect − Σ (return + deduct), fallback ke
// deposit yang dicatat di kontrak bila ledger kosong.
const effectiveDepositExpr = `COALESCE((
	SELECT SUM(CASE WHEN d.deposit_kind = 'collect' THEN d.deposit_amount ELSE -d.deposit_amount END)
	FROM deposits d WHERE d.deposit_contract_id = contracts.contract_id
), contracts.contract_deposit) AS contract_effective_deposit`

// GET /api/contracts
func (h *ContractController) ListContracts(c *fiber.Ctx) error {
	var list []contractDTO.ContractListItem
	err := h.DB.Model(&contractModel.ContractModel{}).
		Select(`contracts.*,
			r.room_name AS contract_room_name,
			t.tenant_full_name AS contract_tenant_name,
			t.tenant_phone AS contract_tenant_phone, ` + effectiveDepositExpr).
		Joins("LEFT JOIN rooms r ON contracts.contract_room_id = r.room_id").
		Joins("LEFT JOIN tenants t ON contracts.contract_tenant_id = t.tenant_id").
		Order("contracts.contract_created_at DESC").
		Scan(&list).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kontrak")
	}
	return helper.JsonList(c, "Daftar kontrak", list)
}

// GET /api/contracts/:id
func (h *ContractController) GetContract(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var detail contractDTO.ContractDetail
	res := h.DB.Model(&contractModel.ContractModel{}).
		Select(`contracts.*,
			r.room_name AS contract_room_name,
			r.room_area AS contract_room_area,
			t.tenant_full_name AS contract_tenant_name,
			t.tenant_phone AS contract_tenant_phone,
			t.tenant_id_card_number AS contract_tenant_id_card_number,
			t.tenant_hometown AS contract_tenant_hometown, ` + effectiveDepositExpr).
		Joins("LEFT JOIN rooms r ON contracts.contract_room_id = r.room_id").
		Joins("LEFT JOIN tenants t ON contracts.contract_tenant_id = t.tenant_id").
		Where("contracts.contract_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kontrak")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kontrak tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail kontrak", detail)
}

// POST /api/contracts
// Transaksi: tolak bila kamar masih punya kontrak aktif (satu kamar satu
// kontrak aktif), simpan kontrak, lalu tandai kamar occupied — status kamar
// sebelumnya tidak divalidasi.
func (h *ContractController) CreateContract(c *fiber.Ctx) error {
	var req contractDTO.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var room roomModel.RoomModel
		if err := tx.First(&room, m.ContractRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kamar tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kamar")
		}
		var tenantCnt int64
		if err := tx.Model(&tenantModel.TenantModel{}).
			Where("tenant_id = ?", m.ContractTenantID).
			Count(&tenantCnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek penghuni")
		}
		if tenantCnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
		}

		var activeCnt int64
		if err := tx.Model(&contractModel.ContractModel{}).
			Where("contract_room_id = ? AND contract_status = ?",
				m.ContractRoomID, contractModel.ContractStatusActive).
			Count(&activeCnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kontrak aktif")
		}
		if activeCnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Kamar masih punya kontrak aktif")
		}

		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kontrak")
		}
		if err := tx.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", m.ContractRoomID).
			Update("room_status", roomModel.RoomStatusOccupied).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status kamar")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Kontrak berhasil dibuat", m)
}

// PUT /api/contracts/:id
// Pindah status ke expired/settled melepas kamar ke vacant; kontrak yang
// sudah berakhir tidak bisa dihidupkan lagi.
func (h *ContractController) UpdateContract(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req contractDTO.UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !contractModel.ValidContractStatus(req.ContractStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kontrak tidak dikenal")
	}

	var m contractModel.ContractModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kontrak tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kontrak")
		}

		if m.ContractStatus.IsTerminal() && req.ContractStatus == contractModel.ContractStatusActive {
			return fiber.NewError(fiber.StatusConflict, "Kontrak yang berakhir tidak bisa diaktifkan lagi")
		}

		if err := req.ApplyToModel(&m); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid")
		}
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kontrak")
		}

		if m.ContractStatus.IsTerminal() {
			if err := tx.Model(&roomModel.RoomModel{}).
				Where("room_id = ?", m.ContractRoomID).
				Update("room_status", roomModel.RoomStatusVacant).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas kamar")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Kontrak berhasil diperbarui", m)
}

// DELETE /api/contracts/:id
// Kontrak aktif yang dihapus melepas kamarnya ke vacant.
func (h *ContractController) DeleteContract(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m contractModel.ContractModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kontrak tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kontrak")
		}

		if m.ContractStatus == contractModel.ContractStatusActive {
			if err := tx.Model(&roomModel.RoomModel{}).
				Where("room_id = ?", m.ContractRoomID).
				Update("room_status", roomModel.RoomStatusVacant).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas kamar")
			}
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kontrak")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "Kontrak berhasil dihapus", fiber.Map{"contract_id": id})
}
