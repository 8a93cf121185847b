// file: internals/features/home/service/statistics_service.go
package service

import (
	"time"

	"gorm.io/gorm"

	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

type RoomCounts struct {
	Total       int64 `json:"total"`
	Vacant      int64 `json:"vacant"`
	Occupied    int64 `json:"occupied"`
	UnderRepair int64 `json:"under_repair"`
}

// RevenuePoint = pemasukan terealisasi satu bulan (hanya tagihan lunas).
type RevenuePoint struct {
	Month   string `json:"month" gorm:"column:invoice_month"`
	Revenue int64  `json:"revenue" gorm:"column:revenue"`
}

type Statistics struct {
	Rooms            RoomCounts     `json:"rooms"`
	RevenueThisMonth int64          `json:"revenue_this_month"`
	TotalOutstanding int64          `json:"total_outstanding"`
	RevenueSeries    []RevenuePoint `json:"revenue_series"`
}

type Dashboard struct {
	Rooms            RoomCounts `json:"rooms"`
	TotalTenants     int64      `json:"total_tenants"`
	ActiveContracts  int64      `json:"active_contracts"`
	UnpaidInvoices   int64      `json:"unpaid_invoices"`
	RevenueThisMonth int64      `json:"revenue_this_month"`
	TotalOutstanding int64      `json:"total_outstanding"`
}

func countRooms(db *gorm.DB) (RoomCounts, error) {
	var rc RoomCounts
	if err := db.Model(&roomModel.RoomModel{}).Count(&rc.Total).Error; err != nil {
		return rc, err
	}
	byStatus := map[roomModel.RoomStatus]*int64{
		roomModel.RoomStatusVacant:      &rc.Vacant,
		roomModel.RoomStatusOccupied:    &rc.Occupied,
		roomModel.RoomStatusUnderRepair: &rc.UnderRepair,
	}
	for status, dst := range byStatus {
		if err := db.Model(&roomModel.RoomModel{}).
			Where("room_status = ?", status).
			Count(dst).Error; err != nil {
			return rc, err
		}
	}
	return rc, nil
}

func revenueForMonth(db *gorm.DB, month string) (int64, error) {
	var out struct{ Revenue int64 }
	err := db.Model(&invoiceModel.InvoiceModel{}).
		Select("COALESCE(SUM(invoice_amount_paid), 0) AS revenue").
		Where("invoice_month = ? AND invoice_status = ?", month, invoiceModel.InvoiceStatusPaid).
		Scan(&out).Error
	return out.Revenue, err
}

func totalOutstanding(db *gorm.DB) (int64, error) {
	var out struct{ Outstanding int64 }
	err := db.Model(&invoiceModel.InvoiceModel{}).
		Select("COALESCE(SUM(invoice_total_amount - invoice_amount_paid), 0) AS outstanding").
		Where("invoice_status <> ?", invoiceModel.InvoiceStatusPaid).
		Scan(&out).Error
	return out.Outstanding, err
}

// BuildStatistics merangkum okupansi + pemasukan untuk halaman statistik.
// Seri pemasukan = 6 bulan terakhir yang punya tagihan lunas, terbaru dulu.
func BuildStatistics(db *gorm.DB, now time.Time) (Statistics, error) {
	var stats Statistics

	rooms, err := countRooms(db)
	if err != nil {
		return stats, err
	}
	stats.Rooms = rooms

	month := helperTime.MonthOf(now)
	if stats.RevenueThisMonth, err = revenueForMonth(db, month); err != nil {
		return stats, err
	}
	if stats.TotalOutstanding, err = totalOutstanding(db); err != nil {
		return stats, err
	}

	stats.RevenueSeries = []RevenuePoint{}
	err = db.Model(&invoiceModel.InvoiceModel{}).
		Select("invoice_month, COALESCE(SUM(invoice_amount_paid), 0) AS revenue").
		Where("invoice_status = ?", invoiceModel.InvoiceStatusPaid).
		Group("invoice_month").
		Order("invoice_month DESC").
		Limit(6).
		Scan(&stats.RevenueSeries).Error
	return stats, err
}

// BuildDashboard merangkum angka-angka utama untuk halaman depan.
func BuildDashboard(db *gorm.DB, now time.Time) (Dashboard, error) {
	var dash Dashboard

	rooms, err := countRooms(db)
	if err != nil {
		return dash, err
	}
	dash.Rooms = rooms

	if err := db.Model(&tenantModel.TenantModel{}).
		Count(&dash.TotalTenants).Error; err != nil {
		return dash, err
	}
	if err := db.Model(&contractModel.ContractModel{}).
		Where("contract_status = ?", contractModel.ContractStatusActive).
		Count(&dash.ActiveContracts).Error; err != nil {
		return dash, err
	}
	if err := db.Model(&invoiceModel.InvoiceModel{}).
		Where("invoice_status <> ?", invoiceModel.InvoiceStatusPaid).
		Count(&dash.UnpaidInvoices).Error; err != nil {
		return dash, err
	}

	month := helperTime.MonthOf(now)
	if dash.RevenueThisMonth, err = revenueForMonth(db, month); err != nil {
		return dash, err
	}
	if dash.TotalOutstanding, err = totalOutstanding(db); err != nil {
		return dash, err
	}
	return dash, nil
}
