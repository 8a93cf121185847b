// file: internals/features/home/service/statistics_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "kostku_backend/internals/databases"
	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedRooms(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, r := range []roomModel.RoomModel{
		{RoomName: "P101", RoomStatus: roomModel.RoomStatusOccupied},
		{RoomName: "P102", RoomStatus: roomModel.RoomStatusVacant},
		{RoomName: "P103", RoomStatus: roomModel.RoomStatusVacant},
		{RoomName: "P104", RoomStatus: roomModel.RoomStatusUnderRepair},
	} {
		room := r
		require.NoError(t, db.Create(&room).Error)
	}
}

func seedInvoice(t *testing.T, db *gorm.DB, month string, total, paid int, status invoiceModel.InvoiceStatus) {
	t.Helper()
	due, err := helperTime.ParseDate(month + "-05")
	require.NoError(t, err)
	inv := invoiceModel.InvoiceModel{
		InvoiceContractID: 1,
		InvoiceRoomID:     1,
		InvoiceMonth:      month,
		InvoiceRentAmount: total,
		InvoiceAmountPaid: paid,
		InvoiceStatus:     status,
		InvoiceDueDate:    due,
	}
	inv.RecalcTotal()
	require.NoError(t, db.Create(&inv).Error)
}

func TestBuildStatistics(t *testing.T) {
	db := setupTestDB(t)
	seedRooms(t, db)

	seedInvoice(t, db, "2026-08", 1500000, 1500000, invoiceModel.InvoiceStatusPaid)
	seedInvoice(t, db, "2026-07", 1200000, 1200000, invoiceModel.InvoiceStatusPaid)
	seedInvoice(t, db, "2026-06", 1100000, 0, invoiceModel.InvoiceStatusUnpaid)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	stats, err := BuildStatistics(db, now)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.Rooms.Total)
	assert.EqualValues(t, 2, stats.Rooms.Vacant)
	assert.EqualValues(t, 1, stats.Rooms.Occupied)
	assert.EqualValues(t, 1, stats.Rooms.UnderRepair)

	assert.EqualValues(t, 1500000, stats.RevenueThisMonth)
	assert.EqualValues(t, 1100000, stats.TotalOutstanding)

	// seri pemasukan hanya bulan dengan tagihan lunas, terbaru dulu
	require.Len(t, stats.RevenueSeries, 2)
	assert.Equal(t, "2026-08", stats.RevenueSeries[0].Month)
	assert.EqualValues(t, 1500000, stats.RevenueSeries[0].Revenue)
	assert.Equal(t, "2026-07", stats.RevenueSeries[1].Month)
	assert.EqualValues(t, 1200000, stats.RevenueSeries[1].Revenue)
}

func TestBuildStatistics_RevenueSeriesCapsAtSixMonths(t *testing.T) {
	db := setupTestDB(t)

	months := []string{"2026-01", "2026-02", "2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}
	for _, m := range months {
		seedInvoice(t, db, m, 1000000, 1000000, invoiceModel.InvoiceStatusPaid)
	}

	stats, err := BuildStatistics(db, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, stats.RevenueSeries, 6)
	assert.Equal(t, "2026-08", stats.RevenueSeries[0].Month)
	assert.Equal(t, "2026-03", stats.RevenueSeries[5].Month)
}

func TestBuildDashboard(t *testing.T) {
	db := setupTestDB(t)
	seedRooms(t, db)

	tenant := tenantModel.TenantModel{TenantFullName: "Dewi Lestari"}
	require.NoError(t, db.Create(&tenant).Error)

	start, err := helperTime.ParseDate("2026-01-01")
	require.NoError(t, err)
	for _, status := range []contractModel.ContractStatus{
		contractModel.ContractStatusActive,
		contractModel.ContractStatusExpired,
	} {
		ct := contractModel.ContractModel{
			ContractRoomID:             1,
			ContractTenantID:           tenant.TenantID,
			ContractStartDate:          start,
			ContractBillingCycleMonths: 1,
			ContractStatus:             status,
		}
		require.NoError(t, db.Create(&ct).Error)
	}

	seedInvoice(t, db, "2026-08", 1500000, 0, invoiceModel.InvoiceStatusUnpaid)

	dash, err := BuildDashboard(db, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 4, dash.Rooms.Total)
	assert.EqualValues(t, 1, dash.TotalTenants)
	assert.EqualValues(t, 1, dash.ActiveContracts)
	assert.EqualValues(t, 1, dash.UnpaidInvoices)
	assert.EqualValues(t, 0, dash.RevenueThisMonth)
	assert.EqualValues(t, 1500000, dash.TotalOutstanding)
}
