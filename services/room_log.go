package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// addRoomLog appends an audit entry. Log failures are reported but never
// fail the operation that triggered them.
func addRoomLog(db *gorm.DB, roomID uint, logType, userName, notes string) {
	entry := models.RoomLog{
		RoomID:       roomID,
		LogType:      logType,
		UserName:     userName,
		Notes:        notes,
		LogTimestamp: time.Now(),
	}
	if err := db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("Error writing room log (%s, room %d): %v", logType, roomID, err)
	}
}
