package models

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"type:varchar(255);not null" json:"name"`
	Email           string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password        string `gorm:"type:varchar(255);not null" json:"-"`
	Role            string `gorm:"type:varchar(50);not null" json:"role"`
	AssignedCottage string `gorm:"type:varchar(100)" json:"assigned_cottage,omitempty"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
