package services

import "github.com/alayamreception/hotel-house-harmony/models"

// DashboardStats is derived from the current room and task collections and
// is never stored.
type DashboardStats struct {
	TotalRooms       int `json:"total_rooms"`
	CleanRooms       int `json:"clean_rooms"`
	DirtyRooms       int `json:"dirty_rooms"`
	OccupiedRooms    int `json:"occupied_rooms"`
	MaintenanceRooms int `json:"maintenance_rooms"`

	TotalTasks      int `json:"total_tasks"`
	PendingTasks    int `json:"pending_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	CancelledTasks  int `json:"cancelled_tasks"`
}

// ComputeDashboardStats counts rooms and tasks by status. Pure function,
// no I/O.
func ComputeDashboardStats(rooms []models.Room, tasks []models.CleaningTask) DashboardStats {
	stats := DashboardStats{
		TotalRooms: len(rooms),
		TotalTasks: len(tasks),
	}

	for _, room := range rooms {
		switch room.Status {
		case models.RoomStatusClean:
			stats.CleanRooms++
		case models.RoomStatusDirty:
			stats.DirtyRooms++
		case models.RoomStatusOccupied:
			stats.OccupiedRooms++
		case models.RoomStatusMaintenance:
			stats.MaintenanceRooms++
		}
	}

	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusPending:
			stats.PendingTasks++
		case models.TaskStatusInProgress:
			stats.InProgressTasks++
		case models.TaskStatusCompleted:
			stats.CompletedTasks++
		case models.TaskStatusCancelled:
			stats.CancelledTasks++
		}
	}

	return stats
}
