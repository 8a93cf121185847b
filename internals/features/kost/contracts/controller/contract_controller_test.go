// file: internals/features/kost/contracts/controller/contract_controller_test.go
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
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	contractRoute "kostku_backend/internals/features/kost/contracts/route"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
	helper "kostku_backend/internals/helpers"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	contractRoute.ContractRoutes(app.Group("/api"), db)
	return app, db
}

func seedRoomAndTenant(t *testing.T, db *gorm.DB) (roomModel.RoomModel, tenantModel.TenantModel) {
	t.Helper()
	room := roomModel.RoomModel{RoomName: "P201", RoomMonthlyRent: 1500000, RoomStatus: roomModel.RoomStatusVacant}
	require.NoError(t, db.Create(&room).Error)
	tenant := tenantModel.TenantModel{TenantFullName: "Budi Santoso"}
	require.NoError(t, db.Create(&tenant).Error)
	return room, tenant
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

func createContractBody(roomID, tenantID uint) fiber.Map {
	return fiber.Map{
		"contract_room_id":      roomID,
		"contract_tenant_id":    tenantID,
		"contract_start_date":   "2026-08-01",
		"contract_monthly_rent": 1500000,
		"contract_deposit":      1500000,
	}
}

func TestCreateContract_MarksRoomOccupied(t *testing.T) {
	app, db := setupTestApp(t)
	room, tenant := seedRoomAndTenant(t, db)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, tenant.TenantID)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got roomModel.RoomModel
	require.NoError(t, db.First(&got, room.RoomID).Error)
	assert.Equal(t, roomModel.RoomStatusOccupied, got.RoomStatus)

	var ct contractModel.ContractModel
	require.NoError(t, db.Where("contract_room_id = ?", room.RoomID).First(&ct).Error)
	assert.Equal(t, contractModel.ContractStatusActive, ct.ContractStatus)
	assert.Equal(t, 1, ct.ContractBillingCycleMonths)
}

func TestCreateContract_RejectsSecondActiveContract(t *testing.T) {
	app, db := setupTestApp(t)
	room, tenant := seedRoomAndTenant(t, db)

	other := tenantModel.TenantModel{TenantFullName: "Siti Aminah"}
	require.NoError(t, db.Create(&other).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, tenant.TenantID)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, other.TenantID)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var cnt int64
	require.NoError(t, db.Model(&contractModel.ContractModel{}).
		Where("contract_room_id = ?", room.RoomID).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestCreateContract_UnknownRoomOrTenant(t *testing.T) {
	app, db := setupTestApp(t)
	room, tenant := seedRoomAndTenant(t, db)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(999, tenant.TenantID)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, 999)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateContract_TerminalStatusReleasesRoom(t *testing.T) {
	app, db := setupTestApp(t)
	room, tenant := seedRoomAndTenant(t, db)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, tenant.TenantID)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ct contractModel.ContractModel
	require.NoError(t, db.Where("contract_room_id = ?", room.RoomID).First(&ct).Error)

	update := fiber.Map{
		"contract_room_id":              room.RoomID,
		"contract_tenant_id":            tenant.TenantID,
		"contract_start_date":           "2026-08-01",
		"contract_monthly_rent":         1500000,
		"contract_deposit":              1500000,
		"contract_billing_cycle_months": 1,
		"contract_status":               "settled",
	}
	resp, err = app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/contracts/%d", ct.ContractID), update))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got roomModel.RoomModel
	require.NoError(t, db.First(&got, room.RoomID).Error)
	assert.Equal(t, roomModel.RoomStatusVacant, got.RoomStatus)

	// kontrak yang sudah berakhir tidak bisa dihidupkan lagi
	update["contract_status"] = "active"
	resp, err = app.Test(jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/contracts/%d", ct.ContractID), update))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteContract_ActiveReleasesRoom(t *testing.T) {
	app, db := setupTestApp(t)
	room, tenant := seedRoomAndTenant(t, db)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contracts",
		createContractBody(room.RoomID, tenant.TenantID)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ct contractModel.ContractModel
	require.NoError(t, db.Where("contract_room_id = ?", room.RoomID).First(&ct).Error)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/contracts/%d", ct.ContractID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got roomModel.RoomModel
	require.NoError(t, db.First(&got, room.RoomID).Error)
	assert.Equal(t, roomModel.RoomStatusVacant, got.RoomStatus)
}
