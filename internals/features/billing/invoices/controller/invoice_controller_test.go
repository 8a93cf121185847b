// file: internals/features/billing/invoices/controller/invoice_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "kostku_backend/internals/databases"
	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	invoiceRoute "kostku_backend/internals/features/billing/invoices/route"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helper "kostku_backend/internals/helpers"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	invoiceRoute.InvoiceRoutes(app.Group("/api"), db)
	return app, db
}

func seedActiveContract(t *testing.T, db *gorm.DB, rent int) contractModel.ContractModel {
	t.Helper()
	room := roomModel.RoomModel{RoomName: "P301", RoomMonthlyRent: rent, RoomStatus: roomModel.RoomStatusOccupied}
	require.NoError(t, db.Create(&room).Error)
	tenant := tenantModel.TenantModel{TenantFullName: "Agus Salim"}
	require.NoError(t, db.Create(&tenant).Error)

	start, err := helperTime.ParseDate("2026-01-01")
	require.NoError(t, err)
	ct := contractModel.ContractModel{
		ContractRoomID:             room.RoomID,
		ContractTenantID:           tenant.TenantID,
		ContractStartDate:          start,
		ContractMonthlyRent:        rent,
		ContractBillingCycleMonths: 1,
		ContractStatus:             contractModel.ContractStatusActive,
	}
	require.NoError(t, db.Create(&ct).Error)
	return ct
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func generateFor(t *testing.T, app *fiber.App, month string) {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/invoices/generate",
		fiber.Map{"invoice_month": month}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateInvoices_RejectsBadMonth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/invoices/generate",
		fiber.Map{"invoice_month": "08-2026"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPayInvoice_SettlesInFull(t *testing.T) {
	app, db := setupTestApp(t)
	ct := seedActiveContract(t, db, 1500000)
	generateFor(t, app, "2026-08")

	var inv invoiceModel.InvoiceModel
	require.NoError(t, db.Where("invoice_contract_id = ?", ct.ContractID).First(&inv).Error)
	require.Equal(t, invoiceModel.InvoiceStatusUnpaid, inv.InvoiceStatus)

	resp, err := app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/invoices/%d/pay", inv.InvoiceID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&inv, inv.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
	assert.Equal(t, inv.InvoiceTotalAmount, inv.InvoiceAmountPaid)
	require.NotNil(t, inv.InvoicePaidDate)
	assert.Equal(t, 0, inv.Outstanding())
}

func TestUpdateInvoice_MiscFeeRecalculatesTotal(t *testing.T) {
	app, db := setupTestApp(t)
	ct := seedActiveContract(t, db, 1000000)
	generateFor(t, app, "2026-08")

	var inv invoiceModel.InvoiceModel
	require.NoError(t, db.Where("invoice_contract_id = ?", ct.ContractID).First(&inv).Error)
	before := inv.InvoiceTotalAmount

	note := "ganti kunci"
	resp, err := app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/invoices/%d", inv.InvoiceID),
		fiber.Map{"invoice_misc_amount": 75000, "invoice_misc_note": note}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&inv, inv.InvoiceID).Error)
	assert.Equal(t, 75000, inv.InvoiceMiscAmount)
	require.NotNil(t, inv.InvoiceMiscNote)
	assert.Equal(t, note, *inv.InvoiceMiscNote)
	assert.Equal(t, before+75000, inv.InvoiceTotalAmount)
}

func TestUpdateInvoice_PaidInvoiceIsLocked(t *testing.T) {
	app, db := setupTestApp(t)
	ct := seedActiveContract(t, db, 1000000)
	generateFor(t, app, "2026-08")

	var inv invoiceModel.InvoiceModel
	require.NoError(t, db.Where("invoice_contract_id = ?", ct.ContractID).First(&inv).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/invoices/%d/pay", inv.InvoiceID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/invoices/%d", inv.InvoiceID),
		fiber.Map{"invoice_misc_amount": 50000}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetInvoice_NotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/invoices/999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
