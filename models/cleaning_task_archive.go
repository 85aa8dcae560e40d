package models

import "time"

// CleaningTaskArchive holds terminal tasks moved out of the live table.
// Rows keep the original task ID; assignments are not carried over.
type CleaningTaskArchive struct {
	ID                uint       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RoomID            uint       `gorm:"not null;index" json:"room_id"`
	StaffID           *uint      `json:"staff_id,omitempty"`
	SupervisorID      *uint      `json:"supervisor_id,omitempty"`
	Status            string     `gorm:"type:varchar(20);not null" json:"status"`
	ScheduledDate     time.Time  `gorm:"not null" json:"scheduled_date"`
	CompletedDate     *time.Time `json:"completed_date,omitempty"`
	CleaningStartTime *time.Time `json:"cleaning_start_time,omitempty"`
	CleaningEndTime   *time.Time `json:"cleaning_end_time,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes"`
	BookingID         string     `gorm:"type:varchar(100)" json:"booking_id,omitempty"`
	CheckoutExtended  bool       `gorm:"default:false" json:"checkout_extended"`
	ArrivalTime       *time.Time `json:"arrival_time,omitempty"`
	DepartureTime     *time.Time `json:"departure_time,omitempty"`
	CleaningType      string     `gorm:"type:varchar(50)" json:"cleaning_type,omitempty"`
	TaskType          string     `gorm:"type:varchar(50)" json:"task_type,omitempty"`
	CottageType       string     `gorm:"type:varchar(100)" json:"cottage_type"`
	ArchivedAt        time.Time  `gorm:"not null" json:"archived_at"`
}
