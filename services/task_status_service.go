package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
)

// TaskStatusService drives the cleaning task lifecycle:
//
//	pending <-> in-progress -> completed
//	pending / in-progress   -> cancelled
//
// completed and cancelled are terminal. Anything else is rejected with
// an InvalidTransitionError; the engine does not trust the caller.
type TaskStatusService struct {
	DB *gorm.DB
}

func NewTaskStatusService(db *gorm.DB) *TaskStatusService {
	return &TaskStatusService{DB: db}
}

var allowedTransitions = map[string]map[string]bool{
	models.TaskStatusPending: {
		models.TaskStatusInProgress: true,
		models.TaskStatusCancelled:  true,
	},
	models.TaskStatusInProgress: {
		models.TaskStatusPending:   true, // pause
		models.TaskStatusCompleted: true,
		models.TaskStatusCancelled: true,
	},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// UpdateTaskStatus applies one lifecycle transition with its side effects:
//
//   - first entry to in-progress stamps CleaningStartTime; a pause and
//     restart does not move it.
//   - entry to completed stamps CompletedDate and CleaningEndTime and
//     cascades the room to clean, which stamps the room's LastCleaned.
//   - entry to cancelled requires a reason, written into the task notes.
//
// Task, room and audit log are updated in one transaction.
func (s *TaskStatusService) UpdateTaskStatus(taskID uint, newStatus, cancelReason, actor string) (*models.CleaningTask, error) {
	var task models.CleaningTask
	if err := s.DB.First(&task, taskID).Error; err != nil {
		return nil, ErrTaskNotFound
	}

	if !CanTransition(task.Status, newStatus) {
		return nil, &InvalidTransitionError{From: task.Status, To: newStatus}
	}
	if newStatus == models.TaskStatusCancelled && cancelReason == "" {
		return nil, ErrCancelReasonRequired
	}

	now := time.Now()
	previous := task.Status

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		switch newStatus {
		case models.TaskStatusInProgress:
			if task.CleaningStartTime == nil {
				task.CleaningStartTime = &now
			}
		case models.TaskStatusCompleted:
			task.CompletedDate = &now
			task.CleaningEndTime = &now
		case models.TaskStatusCancelled:
			task.Notes = cancelReason
		}
		task.Status = newStatus

		if err := tx.Save(&task).Error; err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if newStatus == models.TaskStatusCompleted {
			var room models.Room
			if err := tx.First(&room, task.RoomID).Error; err != nil {
				return fmt.Errorf("loading room for cascade: %w", err)
			}
			room.Status = models.RoomStatusClean
			room.LastCleaned = &now
			if err := tx.Save(&room).Error; err != nil {
				return fmt.Errorf("cascading room status: %w", err)
			}
		}

		entry := models.RoomLog{
			RoomID:       task.RoomID,
			LogType:      transitionLogType(previous, newStatus),
			UserName:     actor,
			Notes:        transitionLogNotes(previous, newStatus, cancelReason),
			LogTimestamp: now,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func transitionLogType(from, to string) string {
	switch to {
	case models.TaskStatusInProgress:
		return models.LogTaskStarted
	case models.TaskStatusPending:
		return models.LogTaskPaused
	case models.TaskStatusCompleted:
		return models.LogTaskCompleted
	case models.TaskStatusCancelled:
		return models.LogTaskCancelled
	default:
		return fmt.Sprintf("Status %s", to)
	}
}

func transitionLogNotes(from, to, cancelReason string) string {
	if to == models.TaskStatusCancelled {
		return cancelReason
	}
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}
