package controllers

import (
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/realtime"
	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// computeStats recomputes dashboard stats from the current room and task
// collections, optionally narrowed to one cottage.
func computeStats(db *gorm.DB, cottage string) services.DashboardStats {
	var rooms []models.Room
	roomQuery := db.Model(&models.Room{})
	if cottage != "" {
		roomQuery = roomQuery.Where("cottage = ?", cottage)
	}
	if err := roomQuery.Find(&rooms).Error; err != nil {
		utils.ErrorLogger.Printf("Error loading rooms for stats: %v", err)
	}

	var tasks []models.CleaningTask
	taskQuery := db.Model(&models.CleaningTask{})
	if cottage != "" {
		taskQuery = taskQuery.Where("cottage_type = ?", cottage)
	}
	if err := taskQuery.Find(&tasks).Error; err != nil {
		utils.ErrorLogger.Printf("Error loading tasks for stats: %v", err)
	}

	return services.ComputeDashboardStats(rooms, tasks)
}

// broadcastStats pushes fresh unscoped stats to every realtime client.
func broadcastStats(db *gorm.DB) {
	realtime.BroadcastDashboardUpdate(computeStats(db, ""))
}
