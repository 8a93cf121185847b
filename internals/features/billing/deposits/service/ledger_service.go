// file: internals/features/billing/deposits/service/ledger_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	depositModel "kostku_backend/internals/features/billing/deposits/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
)

// EffectiveDeposit menghitung deposit efektif sebuah kontrak dari ledger:
// Σ collect − Σ (return + deduct). Bila belum ada transaksi sama sekali,
// jatuh ke deposit yang dicatat saat kontrak dibuat.
func EffectiveDeposit(db *gorm.DB, contractID uint) (int, error) {
	var cnt int64
	if err := db.Model(&depositModel.DepositTransactionModel{}).
		Where("deposit_contract_id = ?", contractID).
		Count(&cnt).Error; err != nil {
		return 0, err
	}

	if cnt == 0 {
		var contract contractModel.ContractModel
		if err := db.First(&contract, contractID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, err
			}
			return 0, err
		}
		return contract.ContractDeposit, nil
	}

	var net struct {
		Net int64
	}
	err := db.Model(&depositModel.DepositTransactionModel{}).
		Select(`COALESCE(SUM(CASE WHEN deposit_kind = 'collect'
			THEN deposit_amount ELSE -deposit_amount END), 0) AS net`).
		Where("deposit_contract_id = ?", contractID).
		Scan(&net).Error
	if err != nil {
		return 0, err
	}
	return int(net.Net), nil
}
