package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
)

// ArchiveService moves terminal tasks out of the live table.
type ArchiveService struct {
	DB *gorm.DB
}

func NewArchiveService(db *gorm.DB) *ArchiveService {
	return &ArchiveService{DB: db}
}

// ArchiveTerminalTasks copies completed and cancelled tasks older than
// the cutoff into cleaning_tasks_archive and deletes them, together with
// their assignments, in one transaction. Returns the number archived.
func (s *ArchiveService) ArchiveTerminalTasks(before time.Time) (int, error) {
	var tasks []models.CleaningTask
	if err := s.DB.Where("status IN ? AND updated_at < ?",
		[]string{models.TaskStatusCompleted, models.TaskStatusCancelled}, before).
		Find(&tasks).Error; err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	now := time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, task := range tasks {
			archived := models.CleaningTaskArchive{
				ID:                task.ID,
				RoomID:            task.RoomID,
				StaffID:           task.StaffID,
				SupervisorID:      task.SupervisorID,
				Status:            task.Status,
				ScheduledDate:     task.ScheduledDate,
				CompletedDate:     task.CompletedDate,
				CleaningStartTime: task.CleaningStartTime,
				CleaningEndTime:   task.CleaningEndTime,
				Notes:             task.Notes,
				BookingID:         task.BookingID,
				CheckoutExtended:  task.CheckoutExtended,
				ArrivalTime:       task.ArrivalTime,
				DepartureTime:     task.DepartureTime,
				CleaningType:      task.CleaningType,
				TaskType:          task.TaskType,
				CottageType:       task.CottageType,
				ArchivedAt:        now,
			}
			if err := tx.Create(&archived).Error; err != nil {
				return fmt.Errorf("archiving task %d: %w", task.ID, err)
			}
			if err := tx.Where("task_id = ?", task.ID).
				Delete(&models.TaskAssignment{}).Error; err != nil {
				return fmt.Errorf("removing assignments for task %d: %w", task.ID, err)
			}
			if err := tx.Delete(&models.CleaningTask{}, task.ID).Error; err != nil {
				return fmt.Errorf("deleting task %d: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}
