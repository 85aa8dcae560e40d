package models

import "time"

// Cleaning task statuses
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type CleaningTask struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	RoomID uint  `gorm:"not null;index" json:"room_id"`
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	// StaffID mirrors the first assignee for older single-assignee
	// consumers. The Assignments set is authoritative.
	StaffID      *uint  `gorm:"index" json:"staff_id,omitempty"`
	SupervisorID *uint  `gorm:"index" json:"supervisor_id,omitempty"`
	Supervisor   *Staff `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`

	Status            string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
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
	CottageType       string     `gorm:"type:varchar(100);index" json:"cottage_type"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`

	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments"`
}

// PrimaryAssignee returns the first assignee, or nil for an unassigned task.
func (t *CleaningTask) PrimaryAssignee() *TaskAssignment {
	if len(t.Assignments) == 0 {
		return nil
	}
	return &t.Assignments[0]
}
