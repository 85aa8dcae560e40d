package models

import "time"

// Room statuses
const (
	RoomStatusClean       = "clean"
	RoomStatusDirty       = "dirty"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOccupied    = "occupied"
)

type Room struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	RoomNumber    string     `gorm:"type:varchar(50);not null" json:"room_number"`
	Cottage       string     `gorm:"type:varchar(100);not null;index" json:"cottage"`
	Status        string     `gorm:"type:varchar(20);not null;default:'dirty'" json:"status"`
	Notes         string     `gorm:"type:text" json:"notes"`
	Priority      int        `gorm:"not null;default:1" json:"priority"`
	LastCleaned   *time.Time `json:"last_cleaned,omitempty"`
	TodayCheckout bool       `gorm:"default:false" json:"today_checkout"`
	EarlyCheckout bool       `gorm:"default:false" json:"early_checkout"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
