package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// AssignmentService owns the task <-> staff binding. The TaskAssignment
// set is the authoritative record of who cleans what; the task's StaffID
// column only shadows the first assignee for legacy consumers.
type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

// AssignTask creates a pending cleaning task for the room and binds every
// given staff member to it.
//
// Task creation and assignment creation are two separate writes. If the
// second fails the task row stays behind with zero assignees; the error
// names the step that failed so the caller can tell the difference.
func (s *AssignmentService) AssignTask(roomID uint, staffIDs []uint, supervisorID *uint, actor string) (*models.CleaningTask, error) {
	if len(staffIDs) == 0 {
		return nil, ErrNoStaffAssigned
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, ErrRoomNotFound
	}

	now := time.Now()
	task := models.CleaningTask{
		RoomID:        room.ID,
		StaffID:       &staffIDs[0],
		SupervisorID:  supervisorID,
		Status:        models.TaskStatusPending,
		ScheduledDate: now,
		CottageType:   room.Cottage,
	}

	if err := s.DB.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	assignments := make([]models.TaskAssignment, 0, len(staffIDs))
	for _, staffID := range staffIDs {
		assignments = append(assignments, models.TaskAssignment{
			TaskID:     task.ID,
			StaffID:    staffID,
			AssignedAt: now,
		})
	}

	if err := s.DB.Create(&assignments).Error; err != nil {
		utils.ErrorLogger.Printf("Task %d created but assignments failed: %v", task.ID, err)
		return nil, fmt.Errorf("creating assignments: %w", err)
	}

	addRoomLog(s.DB, room.ID, models.LogTaskAssigned, actor,
		fmt.Sprintf("Assigned to %d staff member(s)", len(staffIDs)))

	task.Assignments = assignments
	return &task, nil
}

// UpdateTaskAssignment replaces the task's entire assignment set. Delete
// and reinsert run in one transaction so a partial failure leaves the
// previous assignees in place rather than none.
func (s *AssignmentService) UpdateTaskAssignment(taskID uint, staffIDs []uint, supervisorID *uint, actor string) (*models.CleaningTask, error) {
	if len(staffIDs) == 0 {
		return nil, ErrNoStaffAssigned
	}

	var task models.CleaningTask
	if err := s.DB.First(&task, taskID).Error; err != nil {
		return nil, ErrTaskNotFound
	}

	now := time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if supervisorID != nil {
			task.SupervisorID = supervisorID
		}
		task.StaffID = &staffIDs[0]
		if err := tx.Save(&task).Error; err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if err := tx.Where("task_id = ?", task.ID).
			Delete(&models.TaskAssignment{}).Error; err != nil {
			return fmt.Errorf("removing previous assignments: %w", err)
		}

		assignments := make([]models.TaskAssignment, 0, len(staffIDs))
		for _, staffID := range staffIDs {
			assignments = append(assignments, models.TaskAssignment{
				TaskID:     task.ID,
				StaffID:    staffID,
				AssignedAt: now,
			})
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return fmt.Errorf("creating assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	addRoomLog(s.DB, task.RoomID, models.LogTaskReassigned, actor,
		fmt.Sprintf("Reassigned to %d staff member(s)", len(staffIDs)))

	if err := s.DB.Preload("Assignments.Staff").First(&task, task.ID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// AssignedRoomsByStaff projects the room ids each staff member is bound to
// through active (pending or in-progress) tasks. Staff.AssignedRooms is
// always filled from this, never stored.
func (s *AssignmentService) AssignedRoomsByStaff() (map[uint][]uint, error) {
	var rows []struct {
		StaffID uint
		RoomID  uint
	}
	err := s.DB.Model(&models.TaskAssignment{}).
		Select("task_assignments.staff_id, cleaning_tasks.room_id").
		Joins("JOIN cleaning_tasks ON cleaning_tasks.id = task_assignments.task_id").
		Where("cleaning_tasks.status IN ?",
			[]string{models.TaskStatusPending, models.TaskStatusInProgress}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	projection := make(map[uint][]uint)
	for _, row := range rows {
		seen := false
		for _, id := range projection[row.StaffID] {
			if id == row.RoomID {
				seen = true
				break
			}
		}
		if !seen {
			projection[row.StaffID] = append(projection[row.StaffID], row.RoomID)
		}
	}
	return projection, nil
}
