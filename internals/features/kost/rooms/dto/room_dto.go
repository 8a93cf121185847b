// file: internals/features/kost/rooms/dto/room_dto.go
package dto

import (
	model "kostku_backend/internals/features/kost/rooms/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateRoomRequest struct {
	RoomName        string  `json:"room_name" validate:"required,max=60"`
	RoomFloor       *int    `json:"room_floor" validate:"omitempty,min=0"`
	RoomArea        float64 `json:"room_area" validate:"min=0"`
	RoomMonthlyRent int     `json:"room_monthly_rent" validate:"min=0"`
	RoomDescription *string `json:"room_description"`
}

func (r *CreateRoomRequest) ToModel() *model.RoomModel {
	m := &model.RoomModel{
		RoomName:        r.RoomName,
		RoomFloor:       1,
		RoomArea:        r.RoomArea,
		RoomMonthlyRent: r.RoomMonthlyRent,
		RoomDescription: r.RoomDescription,
		RoomStatus:      model.RoomStatusVacant,
	}
	if r.RoomFloor != nil {
		m.RoomFloor = *r.RoomFloor
	}
	return m
}

/* =========================================================
   REQUEST: Update (status ikut bisa diubah, mis. under_repair)
   ========================================================= */

type UpdateRoomRequest struct {
	RoomName        string            `json:"room_name" validate:"required,max=60"`
	RoomFloor       int               `json:"room_floor" validate:"min=0"`
	RoomArea        float64           `json:"room_area" validate:"min=0"`
	RoomMonthlyRent int               `json:"room_monthly_rent" validate:"min=0"`
	RoomDescription *string           `json:"room_description"`
	RoomStatus      *model.RoomStatus `json:"room_status"`
}

func (r *UpdateRoomRequest) ApplyToModel(m *model.RoomModel) {
	m.RoomName = r.RoomName
	m.RoomFloor = r.RoomFloor
	m.RoomArea = r.RoomArea
	m.RoomMonthlyRent = r.RoomMonthlyRent
	m.RoomDescription = r.RoomDescription
	if r.RoomStatus != nil {
		m.RoomStatus = *r.RoomStatus
	}
}

/* =========================================================
   RESPONSE: list item dengan info kontrak aktif
   ========================================================= */

type RoomListItem struct {
	model.RoomModel
	RoomHasActiveContract bool    `json:"room_has_active_contract" gorm:"column:room_has_active_contract"`
	RoomTenantName        *string `json:"room_tenant_name,omitempty" gorm:"column:room_tenant_name"`
}
