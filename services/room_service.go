package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
)

// RoomService owns room status changes and the checkout flows.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// UpdateRoomStatus applies an operator status override. LastCleaned is
// stamped exactly when the status becomes clean and never cleared by any
// other transition.
func (s *RoomService) UpdateRoomStatus(roomID uint, status, actor string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, ErrRoomNotFound
	}

	previous := room.Status
	room.Status = status
	if status == models.RoomStatusClean {
		now := time.Now()
		room.LastCleaned = &now
	}

	if err := s.DB.Save(&room).Error; err != nil {
		return nil, err
	}

	addRoomLog(s.DB, room.ID, models.LogStatusOverride, actor,
		fmt.Sprintf("Status changed from %s to %s", previous, status))
	return &room, nil
}

// MarkEarlyCheckout flags the room and opens a pending cleaning task when
// the room has none. Repeated calls while a pending task exists only set
// the flag; they never stack up tasks.
func (s *RoomService) MarkEarlyCheckout(roomID uint, actor string) (*models.Room, bool, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, false, ErrRoomNotFound
	}

	room.EarlyCheckout = true
	if err := s.DB.Save(&room).Error; err != nil {
		return nil, false, err
	}

	var pendingCount int64
	if err := s.DB.Model(&models.CleaningTask{}).
		Where("room_id = ? AND status = ?", room.ID, models.TaskStatusPending).
		Count(&pendingCount).Error; err != nil {
		return nil, false, err
	}

	taskCreated := false
	if pendingCount == 0 {
		task := models.CleaningTask{
			RoomID:        room.ID,
			Status:        models.TaskStatusPending,
			ScheduledDate: time.Now(),
			Notes:         "Early checkout cleaning",
			CottageType:   room.Cottage,
		}
		if err := s.DB.Create(&task).Error; err != nil {
			return nil, false, fmt.Errorf("creating early checkout task: %w", err)
		}
		taskCreated = true
	}

	addRoomLog(s.DB, room.ID, models.LogEarlyCheckout, actor, "")
	return &room, taskCreated, nil
}

// ExtendRoomStay marks the room's most recently scheduled task as
// checkout-extended. Errors if the room has no tasks at all.
func (s *RoomService) ExtendRoomStay(roomID uint, actor string) (*models.CleaningTask, error) {
	var tasks []models.CleaningTask
	if err := s.DB.Where("room_id = ?", roomID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksForRoom
	}

	latest := tasks[0]
	for _, task := range tasks[1:] {
		if task.ScheduledDate.After(latest.ScheduledDate) {
			latest = task
		}
	}

	latest.CheckoutExtended = true
	if err := s.DB.Save(&latest).Error; err != nil {
		return nil, err
	}

	addRoomLog(s.DB, roomID, models.LogStayExtended, actor, "")
	return &latest, nil
}
