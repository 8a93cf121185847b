// file: internals/features/billing/invoices/service/generator_service.go
package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	meterModel "kostku_backend/internals/features/billing/meters/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	settingService "kostku_backend/internals/features/kost/settings/service"
	helper "kostku_backend/internals/helpers"
)

// GenerationFailure mencatat kontrak yang gagal ditagih dalam satu batch.
type GenerationFailure struct {
	ContractID uint   `json:"contract_id"`
	RoomID     uint   `json:"room_id"`
	Reason     string `json:"reason"`
}

type GenerationResult struct {
	InvoiceMonth string              `json:"invoice_month"`
	Created      int                 `json:"created"`
	Skipped      int                 `json:"skipped"`
	Failures     []GenerationFailure `json:"failures,omitempty"`
}

// GenerateMonthlyInvoices membuat tagihan bulan `month` untuk semua kontrak
// aktif yang belum punya tagihan di bulan itu.
//
//  1. Tarif diambil SEKALI untuk seluruh batch.
//  2. Tiap kontrak diproses di transaksi sendiri: satu kontrak gagal tidak
//     menggagalkan sisanya, kegagalan dilaporkan per kontrak.
//  3. Tanpa catatan meteran → listrik/air dihitung 0 unit, bukan error.
//  4. Sudah ada tagihan (atau kalah race di unique index) → skip, sehingga
//     pemanggilan ulang idempoten.
func GenerateMonthlyInvoices(db *gorm.DB, month string) (GenerationResult, error) {
	result := GenerationResult{InvoiceMonth: month}

	tariff, err := settingService.ResolveTariff(db)
	if err != nil {
		return result, err
	}
	dueDate, err := tariff.DueDateFor(month)
	if err != nil {
		return result, err
	}

	var contracts []contractModel.ContractModel
	if err := db.Where("contract_status = ?", contractModel.ContractStatusActive).
		Order("contract_id").
		Find(&contracts).Error; err != nil {
		return result, err
	}

	for _, ct := range contracts {
		err := db.Transaction(func(tx *gorm.DB) error {
			var cnt int64
			if err := tx.Model(&invoiceModel.InvoiceModel{}).
				Where("invoice_contract_id = ? AND invoice_month = ?", ct.ContractID, month).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return errAlreadyInvoiced
			}

			// Catatan meteran bulan ini; absen = konsumsi nol.
			electricUnits, waterUnits := 0, 0
			var reading meterModel.MeterReadingModel
			err := tx.Where("meter_reading_room_id = ? AND meter_reading_month = ?",
				ct.ContractRoomID, month).
				First(&reading).Error
			switch {
			case err == nil:
				electricUnits = reading.ElectricDelta()
				waterUnits = reading.WaterDelta()
			case errors.Is(err, gorm.ErrRecordNotFound):
				// biarkan nol
			default:
				return err
			}

			inv := invoiceModel.InvoiceModel{
				InvoiceContractID:     ct.ContractID,
				InvoiceRoomID:         ct.ContractRoomID,
				InvoiceMonth:          month,
				InvoiceRentAmount:     ct.ContractMonthlyRent,
				InvoiceElectricAmount: electricUnits * tariff.ElectricRate,
				InvoiceWaterAmount:    waterUnits * tariff.WaterRate,
				InvoiceWifiAmount:     tariff.WifiFee,
				InvoiceTrashAmount:    tariff.TrashFee,
				InvoiceStatus:         invoiceModel.InvoiceStatusUnpaid,
				InvoiceDueDate:        dueDate,
			}
			inv.RecalcTotal()
			return tx.Create(&inv).Error
		})

		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, errAlreadyInvoiced), helper.IsUniqueViolation(err):
			result.Skipped++
		default:
			log.Printf("[GENERATE] kontrak %d gagal ditagih: %v", ct.ContractID, err)
			result.Failures = append(result.Failures, GenerationFailure{
				ContractID: ct.ContractID,
				RoomID:     ct.ContractRoomID,
				Reason:     err.Error(),
			})
		}
	}

	return result, nil
}

var errAlreadyInvoiced = errors.New("invoice already exists for this month")
