package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/realtime"
)

// ChangeMonitor polls the db_changes feed (filled by row triggers on the
// rooms and cleaning_tasks tables) and broadcasts each change over the
// realtime hub. The feed is advisory only; the engines always act on
// their own reads, never on these events.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		log.Printf("Error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		switch change.TableName {
		case "rooms":
			cm.processRoomChange(change)
		case "cleaning_tasks":
			cm.processTaskChange(change)
		}

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			log.Printf("Error marking change as processed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing change batch: %v", err)
		tx.Rollback()
		return
	}
}

func (cm *ChangeMonitor) processRoomChange(change models.DBChange) {
	var room models.Room

	if change.ActionType != "DELETE" {
		if err := cm.DB.First(&room, change.RecordID).Error; err != nil {
			log.Printf("Error fetching changed room: %v", err)
			return
		}
	}

	switch change.ActionType {
	case "INSERT":
		realtime.BroadcastRoomCreate(room)
	case "UPDATE":
		realtime.BroadcastRoomUpdate(room)
	case "DELETE":
		realtime.BroadcastRoomDelete(models.Room{ID: uint(change.RecordID)})
	}
}

func (cm *ChangeMonitor) processTaskChange(change models.DBChange) {
	var task models.CleaningTask

	if change.ActionType != "DELETE" {
		if err := cm.DB.Preload("Assignments").First(&task, change.RecordID).Error; err != nil {
			log.Printf("Error fetching changed task: %v", err)
			return
		}
	}

	switch change.ActionType {
	case "INSERT":
		realtime.BroadcastTaskCreate(task)
	case "UPDATE":
		realtime.BroadcastTaskUpdate(task)
	}
}
