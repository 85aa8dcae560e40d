package models

import "time"

// Room log types
const (
	LogTaskAssigned   = "Task assigned"
	LogTaskReassigned = "Task reassigned"
	LogTaskStarted    = "Task started"
	LogTaskPaused     = "Task paused"
	LogTaskCompleted  = "Task completed"
	LogTaskCancelled  = "Task cancelled"
	LogEarlyCheckout  = "Early checkout"
	LogStayExtended   = "Stay extended"
	LogStatusOverride = "Status override"
)

// RoomLog is an append-only audit entry. There is no update or delete path.
type RoomLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomID       uint      `gorm:"not null;index" json:"room_id"`
	Room         *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	LogType      string    `gorm:"type:varchar(50);not null" json:"log_type"`
	UserName     string    `gorm:"type:varchar(255);not null" json:"user_name"`
	Notes        string    `gorm:"type:text" json:"notes"`
	LogTimestamp time.Time `gorm:"not null;index" json:"log_timestamp"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
