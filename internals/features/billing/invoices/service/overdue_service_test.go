// file: internals/features/billing/invoices/service/overdue_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

func seedInvoice(t *testing.T, db *gorm.DB, contractID uint, month, dueDate string, total int, status invoiceModel.InvoiceStatus) invoiceModel.InvoiceModel {
	t.Helper()
	due, err := helperTime.ParseDate(dueDate)
	require.NoError(t, err)

	inv := invoiceModel.InvoiceModel{
		InvoiceContractID: contractID,
		InvoiceRoomID:     contractID,
		InvoiceMonth:      month,
		InvoiceRentAmount: total,
		InvoiceStatus:     status,
		InvoiceDueDate:    due,
	}
	inv.RecalcTotal()
	if status == invoiceModel.InvoiceStatusPaid {
		inv.InvoiceAmountPaid = inv.InvoiceTotalAmount
	}
	require.NoError(t, db.Create(&inv).Error)
	return inv
}

func TestOverdueInvoices_SelectsOnlyUnpaidPastDue(t *testing.T) {
	db := setupTestDB(t)

	seedInvoice(t, db, 1, "2026-06", "2026-06-05", 1000000, invoiceModel.InvoiceStatusUnpaid) // telat
	seedInvoice(t, db, 2, "2026-07", "2026-07-05", 1200000, invoiceModel.InvoiceStatusPaid)   // lunas
	seedInvoice(t, db, 3, "2026-09", "2026-09-05", 1300000, invoiceModel.InvoiceStatusUnpaid) // belum jatuh tempo

	asOf, err := helperTime.ParseDate("2026-08-20")
	require.NoError(t, err)

	summary, err := OverdueInvoices(db, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 1000000, summary.TotalOutstanding)
	require.Len(t, summary.Items, 1)
	assert.EqualValues(t, 1, summary.Items[0].InvoiceContractID)
}

func TestOverdueInvoices_DueDateIsNotOverdueYet(t *testing.T) {
	db := setupTestDB(t)

	// jatuh tempo hari ini = belum telat (butuh due_date < asOf)
	seedInvoice(t, db, 1, "2026-08", "2026-08-05", 900000, invoiceModel.InvoiceStatusUnpaid)

	asOf, err := helperTime.ParseDate("2026-08-05")
	require.NoError(t, err)

	summary, err := OverdueInvoices(db, asOf)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Empty(t, summary.Items)
}

func TestOverdueInvoices_OrderAndDaysOverdue(t *testing.T) {
	db := setupTestDB(t)

	seedInvoice(t, db, 1, "2026-07", "2026-07-05", 1000000, invoiceModel.InvoiceStatusUnpaid)
	seedInvoice(t, db, 2, "2026-06", "2026-06-05", 2000000, invoiceModel.InvoiceStatusUnpaid)

	asOf, err := helperTime.ParseDate("2026-08-10")
	require.NoError(t, err)

	summary, err := OverdueInvoices(db, asOf)
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)

	// paling lama nunggak duluan
	assert.EqualValues(t, 2, summary.Items[0].InvoiceContractID)
	assert.EqualValues(t, 1, summary.Items[1].InvoiceContractID)

	assert.Equal(t, 66, summary.Items[0].DaysOverdue) // 5 Jun → 10 Agu
	assert.Equal(t, 36, summary.Items[1].DaysOverdue) // 5 Jul → 10 Agu
	assert.Equal(t, 3000000, summary.TotalOutstanding)
}
