// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"strings"

	model "kostku_backend/internals/features/billing/invoices/model"
)

/* =========================================================
   REQUEST: Generate (POST /api/invoices/generate)
   ========================================================= */

type GenerateInvoicesRequest struct {
	InvoiceMonth string `json:"invoice_month" validate:"required,datetime=2006-01"`
}

/* =========================================================
   REQUEST: edit biaya lain-lain (PUT /api/invoices/:id)
   ========================================================= */

type UpdateInvoiceMiscRequest struct {
	InvoiceMiscAmount int     `json:"invoice_misc_amount" validate:"min=0"`
	InvoiceMiscNote   *string `json:"invoice_misc_note"`
}

func (r *UpdateInvoiceMiscRequest) ApplyToModel(m *model.InvoiceModel) {
	m.InvoiceMiscAmount = r.InvoiceMiscAmount
	m.InvoiceMiscNote = nil
	if r.InvoiceMiscNote != nil {
		n := strings.TrimSpace(*r.InvoiceMiscNote)
		if n != "" {
			m.InvoiceMiscNote = &n
		}
	}
	// total ikut rincian, tidak pernah diedit langsung
	m.RecalcTotal()
}

/* =========================================================
   RESPONSE
   ========================================================= */

type InvoiceListItem struct {
	model.InvoiceModel
	InvoiceRoomName    *string `json:"invoice_room_name,omitempty" gorm:"column:invoice_room_name"`
	InvoiceTenantName  *string `json:"invoice_tenant_name,omitempty" gorm:"column:invoice_tenant_name"`
	InvoiceTenantPhone *string `json:"invoice_tenant_phone,omitempty" gorm:"column:invoice_tenant_phone"`
}

type InvoiceDetail struct {
	InvoiceListItem
	InvoiceTenantIDCardNumber *string `json:"invoice_tenant_id_card_number,omitempty" gorm:"column:invoice_tenant_id_card_number"`
}
