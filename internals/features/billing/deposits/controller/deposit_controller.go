// file: internals/features/billing/deposits/controller/deposit_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	depositDTO "kostku_backend/internals/features/billing/deposits/dto"
	depositModel "kostku_backend/internals/features/billing/deposits/model"
	depositService "kostku_backend/internals/features/billing/deposits/service"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	helper "kostku_backend/internals/helpers"
)

type DepositController struct {
	DB *gorm.DB
}

// GET /api/deposits
func (h *DepositController) ListDeposits(c *fiber.Ctx) error {
	var list []depositDTO.DepositListItem
	err := h.DB.Model(&depositModel.DepositTransactionModel{}).
		Select(`deposits.*,
			r.room_name AS deposit_room_name,
			t.tenant_full_name AS deposit_tenant_name`).
		Joins("LEFT JOIN rooms r ON deposits.deposit_room_id = r.room_id").
		Joins("LEFT JOIN contracts ct ON deposits.deposit_contract_id = ct.contract_id").
		Joins("LEFT JOIN tenants t ON ct.contract_tenant_id = t.tenant_id").
		Order("deposits.deposit_date DESC").
		Scan(&list).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil transaksi deposit")
	}
	return helper.JsonList(c, "Transaksi deposit", list)
}

// GET /api/deposits/contract/:id
// Saldo efektif satu kontrak — dipakai form pengembalian deposit.
func (h *DepositController) GetEffectiveDeposit(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	net, err := depositService.EffectiveDeposit(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kontrak tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung deposit efektif")
	}
	return helper.JsonOK(c, "Deposit efektif", fiber.Map{
		"deposit_contract_id":       id,
		"deposit_effective_balance": net,
	})
}

// POST /api/deposits
func (h *DepositController) CreateDeposit(c *fiber.Ctx) error {
	var req depositDTO.CreateDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&contractModel.ContractModel{}).
		Where("contract_id = ?", req.DepositContractID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kontrak")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kontrak tidak ditemukan")
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan transaksi deposit")
	}
	return helper.JsonCreated(c, "Transaksi deposit tersimpan", m)
}

// DELETE /api/deposits/:id
// Menghapus transaksi mengubah saldo efektif ke depan tanpa jurnal balik —
// perilaku lama yang dipertahankan.
func (h *DepositController) DeleteDeposit(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.Delete(&depositModel.DepositTransactionModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus transaksi deposit")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Transaksi deposit tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Transaksi deposit dihapus", fiber.Map{"deposit_id": id})
}
