// file: internals/features/billing/deposits/service/ledger_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "kostku_backend/internals/databases"
	depositModel "kostku_backend/internals/features/billing/deposits/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
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

func seedContract(t *testing.T, db *gorm.DB, deposit int) contractModel.ContractModel {
	t.Helper()
	start, err := helperTime.ParseDate("2026-01-01")
	require.NoError(t, err)

	ct := contractModel.ContractModel{
		ContractRoomID:             1,
		ContractTenantID:           1,
		ContractStartDate:          start,
		ContractDeposit:            deposit,
		ContractBillingCycleMonths: 1,
		ContractStatus:             contractModel.ContractStatusActive,
	}
	require.NoError(t, db.Create(&ct).Error)
	return ct
}

func addDeposit(t *testing.T, db *gorm.DB, contractID uint, kind depositModel.DepositKind, amount int) {
	t.Helper()
	require.NoError(t, db.Create(&depositModel.DepositTransactionModel{
		DepositContractID: contractID,
		DepositRoomID:     1,
		DepositAmount:     amount,
		DepositKind:       kind,
		DepositDate:       helperTime.Today(),
	}).Error)
}

func TestEffectiveDeposit_EmptyLedgerFallsBackToContract(t *testing.T) {
	db := setupTestDB(t)
	ct := seedContract(t, db, 2000000)

	got, err := EffectiveDeposit(db, ct.ContractID)
	require.NoError(t, err)
	assert.Equal(t, 2000000, got)
}

func TestEffectiveDeposit_NetsCollectReturnDeduct(t *testing.T) {
	db := setupTestDB(t)
	ct := seedContract(t, db, 2000000)

	addDeposit(t, db, ct.ContractID, depositModel.DepositKindCollect, 2000000)
	addDeposit(t, db, ct.ContractID, depositModel.DepositKindDeduct, 300000)
	addDeposit(t, db, ct.ContractID, depositModel.DepositKindReturn, 1500000)

	got, err := EffectiveDeposit(db, ct.ContractID)
	require.NoError(t, err)
	assert.Equal(t, 200000, got)
}

func TestEffectiveDeposit_LedgerOverridesContractColumn(t *testing.T) {
	db := setupTestDB(t)
	ct := seedContract(t, db, 5000000)

	// begitu ledger terisi, kolom kontrak tidak dipakai lagi
	addDeposit(t, db, ct.ContractID, depositModel.DepositKindCollect, 1000000)

	got, err := EffectiveDeposit(db, ct.ContractID)
	require.NoError(t, err)
	assert.Equal(t, 1000000, got)
}

func TestEffectiveDeposit_CanGoNegative(t *testing.T) {
	db := setupTestDB(t)
	ct := seedContract(t, db, 0)

	addDeposit(t, db, ct.ContractID, depositModel.DepositKindCollect, 500000)
	addDeposit(t, db, ct.ContractID, depositModel.DepositKindDeduct, 800000)

	got, err := EffectiveDeposit(db, ct.ContractID)
	require.NoError(t, err)
	assert.Equal(t, -300000, got)
}

func TestEffectiveDeposit_UnknownContract(t *testing.T) {
	db := setupTestDB(t)

	_, err := EffectiveDeposit(db, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
