package models

import "time"

type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(50);not null;default:'Housekeeper'" json:"role"`
	Shift     string    `gorm:"type:varchar(20);not null;default:'Morning'" json:"shift"`
	Avatar    string    `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	Cottage   string    `gorm:"type:varchar(100);index" json:"cottage,omitempty"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// AssignedRooms is a projection of the staff member's active task
	// assignments. It is recomputed on every read and never persisted.
	AssignedRooms []uint `gorm:"-" json:"assigned_rooms"`
}
