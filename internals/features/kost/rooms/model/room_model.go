// file: internals/features/kost/rooms/model/room_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// =========================================================
// ENUM — status kamar
// =========================================================

type RoomStatus string

const (
	RoomStatusVacant      RoomStatus = "vacant"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusUnderRepair RoomStatus = "under_repair"
)

// Status kamar disimpan, bukan murni diturunkan: di-set occupied saat
// kontrak dibuat dan kembali vacant saat kontrak berakhir/dihapus.
type RoomModel struct {
	RoomID uint `gorm:"column:room_id;primaryKey;autoIncrement" json:"room_id"`

	RoomName        string     `gorm:"column:room_name;type:varchar(60);not null" json:"room_name"`
	RoomFloor       int        `gorm:"column:room_floor;not null;default:1" json:"room_floor"`
	RoomArea        float64    `gorm:"column:room_area" json:"room_area"`
	RoomMonthlyRent int        `gorm:"column:room_monthly_rent;not null;default:0;check:room_monthly_rent>=0" json:"room_monthly_rent"`
	RoomDescription *string    `gorm:"column:room_description" json:"room_description,omitempty"`
	RoomStatus      RoomStatus `gorm:"column:room_status;type:varchar(20);not null;default:'vacant';index:ix_room_status" json:"room_status"`

	RoomCreatedAt time.Time `gorm:"column:room_created_at;not null;default:CURRENT_TIMESTAMP" json:"room_created_at"`
	RoomUpdatedAt time.Time `gorm:"column:room_updated_at;not null;default:CURRENT_TIMESTAMP" json:"room_updated_at"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RoomCreatedAt.IsZero() {
		m.RoomCreatedAt = now
	}
	m.RoomUpdatedAt = now
	return nil
}

func (m *RoomModel) BeforeUpdate(tx *gorm.DB) error {
	m.RoomUpdatedAt = time.Now()
	return nil
}

func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomStatusVacant, RoomStatusOccupied, RoomStatusUnderRepair:
		return true
	}
	return false
}
