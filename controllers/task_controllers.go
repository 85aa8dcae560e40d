package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/realtime"
	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

type TaskController struct {
	DB          *gorm.DB
	Assignments *services.AssignmentService
	Status      *services.TaskStatusService
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{
		DB:          db,
		Assignments: services.NewAssignmentService(db),
		Status:      services.NewTaskStatusService(db),
	}
}

// GetAllTasks -> cottage-scoped list, fully hydrated with assignments and
// their staff
func (tc *TaskController) GetAllTasks(c *gin.Context) {
	query := tc.DB.Model(&models.CleaningTask{}).
		Preload("Room").
		Preload("Supervisor").
		Preload("Assignments.Staff")
	if cottage := cottageScope(c, tc.DB); cottage != "" {
		query = query.Where("cottage_type = ?", cottage)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.CleaningTask
	if err := query.Order("scheduled_date DESC").Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tasks", tasks)
}

// GetTaskByID -> one hydrated task
func (tc *TaskController) GetTaskByID(c *gin.Context) {
	taskID := c.Param("task_id")
	var task models.CleaningTask
	if err := tc.DB.Preload("Room").
		Preload("Supervisor").
		Preload("Assignments.Staff").
		First(&task, taskID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Task detail", task)
}

// AssignTask -> create a task for a room and bind the given staff
func (tc *TaskController) AssignTask(c *gin.Context) {
	var req struct {
		RoomID       uint   `json:"room_id" binding:"required"`
		StaffIDs     []uint `json:"staff_ids" binding:"required"`
		SupervisorID *uint  `json:"supervisor_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := tc.Assignments.AssignTask(req.RoomID, req.StaffIDs, req.SupervisorID, actorName(c, tc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastTaskCreate(*task)
	realtime.BroadcastStaffNotification(
		fmt.Sprintf("Room %d assigned to %d staff member(s)", task.RoomID, len(task.Assignments)))
	broadcastStats(tc.DB)

	utils.InfoLogger.Printf("Task %d created for room %d with %d assignee(s)",
		task.ID, task.RoomID, len(task.Assignments))
	utils.RespondJSON(c, http.StatusCreated, "Task assigned", task)
}

// UpdateTaskAssignment -> replace the task's full assignment set
func (tc *TaskController) UpdateTaskAssignment(c *gin.Context) {
	taskID, ok := paramUint(c, "task_id")
	if !ok {
		return
	}

	var req struct {
		StaffIDs     []uint `json:"staff_ids" binding:"required"`
		SupervisorID *uint  `json:"supervisor_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := tc.Assignments.UpdateTaskAssignment(taskID, req.StaffIDs, req.SupervisorID, actorName(c, tc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastTaskUpdate(*task)
	broadcastStats(tc.DB)

	utils.InfoLogger.Printf("Task %d reassigned to %d staff member(s)", task.ID, len(task.Assignments))
	utils.RespondJSON(c, http.StatusOK, "Task assignment updated", task)
}

// UpdateTaskStatus -> one lifecycle transition; cancellation carries a reason
func (tc *TaskController) UpdateTaskStatus(c *gin.Context) {
	taskID, ok := paramUint(c, "task_id")
	if !ok {
		return
	}

	var req struct {
		Status       string `json:"status" binding:"required"`
		CancelReason string `json:"cancel_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := tc.Status.UpdateTaskStatus(taskID, req.Status, req.CancelReason, actorName(c, tc.DB))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	realtime.BroadcastTaskUpdate(*task)
	if task.Status == models.TaskStatusCompleted {
		var room models.Room
		if err := tc.DB.First(&room, task.RoomID).Error; err == nil {
			realtime.BroadcastRoomUpdate(room)
		}
	}
	broadcastStats(tc.DB)

	utils.InfoLogger.Printf("Task %d status changed to %s", task.ID, task.Status)
	utils.RespondJSON(c, http.StatusOK, "Task status updated", task)
}

// GetSupervisorTasks -> tasks supervised by one staff member
func (tc *TaskController) GetSupervisorTasks(c *gin.Context) {
	supervisorID, ok := paramUint(c, "staff_id")
	if !ok {
		return
	}

	var tasks []models.CleaningTask
	if err := tc.DB.Preload("Room").
		Preload("Assignments.Staff").
		Where("supervisor_id = ?", supervisorID).
		Order("scheduled_date DESC").
		Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Supervisor tasks", tasks)
}
