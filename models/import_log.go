package models

import "time"

// ImportLog records one bulk task import run.
type ImportLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FileName        string    `gorm:"type:varchar(255)" json:"file_name"`
	RecordsImported int       `gorm:"not null" json:"records_imported"`
	RecordsSkipped  int       `gorm:"not null;default:0" json:"records_skipped"`
	ImportedBy      string    `gorm:"type:varchar(255)" json:"imported_by"`
	ImportTimestamp time.Time `gorm:"not null" json:"import_timestamp"`
}
