package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// RoomLogController exposes the append-only audit trail. There is no
// update or delete handler on purpose.
type RoomLogController struct {
	DB *gorm.DB
}

func NewRoomLogController(db *gorm.DB) *RoomLogController {
	return &RoomLogController{DB: db}
}

// GetRoomLogs -> log entries, optionally for one room
func (rlc *RoomLogController) GetRoomLogs(c *gin.Context) {
	query := rlc.DB.Model(&models.RoomLog{}).Preload("Room")
	if roomID := c.Query("room_id"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}

	var logs []models.RoomLog
	if err := query.Order("log_timestamp DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room logs", logs)
}

// CreateRoomLog -> append a manual audit entry
func (rlc *RoomLogController) CreateRoomLog(c *gin.Context) {
	var req struct {
		RoomID  uint   `json:"room_id" binding:"required"`
		LogType string `json:"log_type" binding:"required"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry := models.RoomLog{
		RoomID:       req.RoomID,
		LogType:      req.LogType,
		UserName:     actorName(c, rlc.DB),
		Notes:        req.Notes,
		LogTimestamp: time.Now(),
	}
	if err := rlc.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Room log created", entry)
}
