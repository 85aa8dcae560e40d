package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/realtime"
	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

type RoomController struct {
	DB    *gorm.DB
	Rooms *services.RoomService
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{
		DB:    db,
		Rooms: services.NewRoomService(db),
	}
}

// GetAllRooms -> list rooms, narrowed to the resolved cottage scope
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	query := rc.DB.Model(&models.Room{})
	if cottage := cottageScope(c, rc.DB); cottage != "" {
		query = query.Where("cottage = ?", cottage)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := query.Order("priority DESC, room_number ASC").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

// GetRoomByID -> detail of one room
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	roomID := c.Param("room_id")
	var room models.Room
	if err := rc.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

// CreateRoom -> add a new room
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req struct {
		RoomNumber string `json:"room_number" binding:"required"`
		Cottage    string `json:"cottage" binding:"required"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
		Priority   int    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Cottage:    req.Cottage,
		Status:     models.RoomStatusDirty,
		Notes:      req.Notes,
		Priority:   req.Priority,
	}
	if req.Status != "" {
		room.Status = req.Status
	}
	if room.Priority == 0 {
		room.Priority = 1
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.BroadcastRoomCreate(room)
	broadcastStats(rc.DB)

	utils.InfoLogger.Printf("New room created: %s (cottage=%s, status=%s)",
		room.RoomNumber, room.Cottage, room.Status)
	utils.RespondJSON(c, http.StatusCreated, "Room created successfully", room)
}

// UpdateRoomStatus -> operator status override
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	roomID, ok := paramUint(c, "room_id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room, err := rc.Rooms.UpdateRoomStatus(roomID, body.Status, actorName(c, rc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastRoomUpdate(*room)
	broadcastStats(rc.DB)

	utils.InfoLogger.Printf("Room %d status changed to %s", room.ID, room.Status)
	utils.RespondJSON(c, http.StatusOK, "Room status updated", room)
}

// MarkEarlyCheckout -> flag the room and open a pending task if none exists
func (rc *RoomController) MarkEarlyCheckout(c *gin.Context) {
	roomID, ok := paramUint(c, "room_id")
	if !ok {
		return
	}

	room, taskCreated, err := rc.Rooms.MarkEarlyCheckout(roomID, actorName(c, rc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastRoomUpdate(*room)
	broadcastStats(rc.DB)

	utils.InfoLogger.Printf("Room %s marked for early checkout (task created: %v)",
		room.RoomNumber, taskCreated)
	utils.RespondJSON(c, http.StatusOK, "Room marked for early checkout", gin.H{
		"room":         room,
		"task_created": taskCreated,
	})
}

// ExtendRoomStay -> mark the room's latest task as checkout-extended
func (rc *RoomController) ExtendRoomStay(c *gin.Context) {
	roomID, ok := paramUint(c, "room_id")
	if !ok {
		return
	}

	task, err := rc.Rooms.ExtendRoomStay(roomID, actorName(c, rc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastTaskUpdate(*task)

	utils.InfoLogger.Printf("Stay extended for room %d (task %d)", roomID, task.ID)
	utils.RespondJSON(c, http.StatusOK, "Room stay extended", task)
}

// GetCottages -> distinct cottage values across all rooms
func (rc *RoomController) GetCottages(c *gin.Context) {
	var cottages []string
	if err := rc.DB.Model(&models.Room{}).
		Distinct("cottage").
		Where("cottage <> ''").
		Order("cottage").
		Pluck("cottage", &cottages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available cottages", cottages)
}
