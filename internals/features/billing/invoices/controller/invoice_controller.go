// file: internals/features/billing/invoices/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceDTO "kostku_backend/internals/features/billing/invoices/dto"
	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	invoiceService "kostku_backend/internals/features/billing/invoices/service"
	settingService "kostku_backend/internals/features/kost/settings/service"
	helper "kostku_backend/internals/helpers"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

type InvoiceController struct {
	DB *gorm.DB
}

// GET /api/invoices
func (h *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	var list []invoiceDTO.InvoiceListItem
	err := h.DB.Model(&invoiceModel.InvoiceModel{}).
		Select(`invoices.*,
			r.room_name AS invoice_room_name,
			t.tenant_full_name AS invoice_tenant_name,
			t.tenant_phone AS invoice_tenant_phone`).
		Joins("LEFT JOIN rooms r ON invoices.invoice_room_id = r.room_id").
		Joins("LEFT JOIN contracts ct ON invoices.invoice_contract_id = ct.contract_id").
		Joins("LEFT JOIN tenants t ON ct.contract_tenant_id = t.tenant_id").
		Order("invoices.invoice_created_at DESC").
		Scan(&list).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar tagihan")
	}
	return helper.JsonList(c, "Daftar tagihan", list)
}

// GET /api/invoices/:id
func (h *InvoiceController) GetInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var detail invoiceDTO.InvoiceDetail
	res := h.DB.Model(&invoiceModel.InvoiceModel{}).
		Select(`invoices.*,
			r.room_name AS invoice_room_name,
			t.tenant_full_name AS invoice_tenant_name,
			t.tenant_phone AS invoice_tenant_phone,
			t.tenant_id_card_number AS invoice_tenant_id_card_number`).
		Joins("LEFT JOIN rooms r ON invoices.invoice_room_id = r.room_id").
		Joins("LEFT JOIN contracts ct ON invoices.invoice_contract_id = ct.contract_id").
		Joins("LEFT JOIN tenants t ON ct.contract_tenant_id = t.tenant_id").
		Where("invoices.invoice_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail tagihan", detail)
}

// POST /api/invoices/generate
// Idempoten per bulan; hasil memuat jumlah dibuat/dilewati + kegagalan
// per kontrak (satu kontrak gagal tidak membatalkan batch).
func (h *InvoiceController) GenerateInvoices(c *fiber.Ctx) error {
	var req invoiceDTO.GenerateInvoicesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := invoiceService.GenerateMonthlyInvoices(h.DB, req.InvoiceMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate tagihan")
	}
	return helper.JsonOK(c, "Generate tagihan selesai", result)
}

// PUT /api/invoices/:id/pay
// Pelunasan penuh: amount_paid = total, status = paid, tanggal bayar hari
// ini. Tidak ada pembayaran parsial.
func (h *InvoiceController) PayInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var m invoiceModel.InvoiceModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	today := helperTime.Today()
	m.InvoiceAmountPaid = m.InvoiceTotalAmount
	m.InvoicePaidDate = &today
	m.InvoiceStatus = invoiceModel.InvoiceStatusPaid

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}
	return helper.JsonUpdated(c, "Tagihan lunas", m)
}

// PUT /api/invoices/:id
// Hanya biaya lain-lain + catatannya yang bisa diedit; total dihitung
// ulang dari rincian. Tagihan lunas tidak bisa diubah lagi.
func (h *InvoiceController) UpdateInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req invoiceDTO.UpdateInvoiceMiscRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m invoiceModel.InvoiceModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if m.InvoiceStatus == invoiceModel.InvoiceStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Tagihan lunas tidak bisa diubah")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}
	return helper.JsonUpdated(c, "Tagihan diperbarui", m)
}

// DELETE /api/invoices/:id
func (h *InvoiceController) DeleteInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.Delete(&invoiceModel.InvoiceModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus tagihan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tagihan dihapus", fiber.Map{"invoice_id": id})
}

// GET /api/overdue-invoices
// Daftar penunggak per hari ini + total piutang.
func (h *InvoiceController) OverdueInvoices(c *fiber.Ctx) error {
	tariff, err := settingService.ResolveTariff(h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca settings")
	}

	summary, err := invoiceService.OverdueInvoices(h.DB, helperTime.Today())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan telat")
	}

	return helper.JsonOK(c, "Tagihan telat", fiber.Map{
		"due_day":           tariff.DueDay,
		"total_outstanding": summary.TotalOutstanding,
		"count":             summary.Count,
		"items":             summary.Items,
	})
}
