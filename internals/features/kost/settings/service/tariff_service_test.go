// file: internals/features/kost/settings/service/tariff_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	settingModel "kostku_backend/internals/features/kost/settings/model"
	helperTime "kostku_backend/internals/helpers/dbtime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&settingModel.SettingModel{}))
	return db
}

func TestResolveTariff_NoRowUsesDefaults(t *testing.T) {
	db := setupTestDB(t)

	tariff, err := ResolveTariff(db)
	require.NoError(t, err)
	assert.Equal(t, 3500, tariff.ElectricRate)
	assert.Equal(t, 25000, tariff.WaterRate)
	assert.Equal(t, 50000, tariff.WifiFee)
	assert.Equal(t, 20000, tariff.TrashFee)
	assert.Equal(t, 5, tariff.DueDay)
}

func TestResolveTariff_ZeroColumnsFallBackPerField(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&settingModel.SettingModel{
		SettingID:           1,
		SettingElectricRate: 4000,
		SettingWaterRate:    0, // kosong → default
		SettingWifiFee:      60000,
		SettingTrashFee:     0, // kosong → default
		SettingDueDay:       10,
	}).Error)

	tariff, err := ResolveTariff(db)
	require.NoError(t, err)
	assert.Equal(t, 4000, tariff.ElectricRate)
	assert.Equal(t, 25000, tariff.WaterRate)
	assert.Equal(t, 60000, tariff.WifiFee)
	assert.Equal(t, 20000, tariff.TrashFee)
	assert.Equal(t, 10, tariff.DueDay)
}

func TestDueDateFor_ZeroPadsDay(t *testing.T) {
	tariff := Tariff{DueDay: 5}

	due, err := tariff.DueDateFor("2026-08")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-05", helperTime.FormatDate(due))

	tariff.DueDay = 28
	due, err = tariff.DueDateFor("2026-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", helperTime.FormatDate(due))
}
