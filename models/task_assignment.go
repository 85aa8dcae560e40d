package models

import "time"

// TaskAssignment binds one staff member to one cleaning task. The full set
// for a task is replaced wholesale on reassignment, never diffed.
type TaskAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TaskID     uint      `gorm:"not null;index" json:"task_id"`
	StaffID    uint      `gorm:"not null;index" json:"staff_id"`
	Staff      *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`
}
