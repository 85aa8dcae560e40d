package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

func setupAssignmentTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Room{}, &models.Staff{}, &models.CleaningTask{},
		&models.TaskAssignment{}, &models.RoomLog{})
	assert.NoError(t, err)
	return db
}

func seedRoomAndStaff(t *testing.T, db *gorm.DB, count int) (models.Room, []models.Staff) {
	room := models.Room{RoomNumber: "101", Cottage: "Garden", Status: models.RoomStatusDirty}
	assert.NoError(t, db.Create(&room).Error)

	staff := make([]models.Staff, 0, count)
	for i := 0; i < count; i++ {
		member := models.Staff{Name: fmt.Sprintf("Cleaner %d", i+1)}
		assert.NoError(t, db.Create(&member).Error)
		staff = append(staff, member)
	}
	return room, staff
}

func TestAssignTask(t *testing.T) {
	db := setupAssignmentTestDB(t)
	room, staff := seedRoomAndStaff(t, db, 2)
	svc := NewAssignmentService(db)

	task, err := svc.AssignTask(room.ID, []uint{staff[0].ID, staff[1].ID}, nil, "tester")
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, room.ID, task.RoomID)
	assert.Equal(t, "Garden", task.CottageType)

	// StaffID shadows the first assignee.
	assert.NotNil(t, task.StaffID)
	assert.Equal(t, staff[0].ID, *task.StaffID)

	var count int64
	db.Model(&models.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	var logEntry models.RoomLog
	assert.NoError(t, db.Where("room_id = ?", room.ID).First(&logEntry).Error)
	assert.Equal(t, models.LogTaskAssigned, logEntry.LogType)
}

func TestAssignTaskNoStaff(t *testing.T) {
	db := setupAssignmentTestDB(t)
	room, _ := seedRoomAndStaff(t, db, 0)
	svc := NewAssignmentService(db)

	_, err := svc.AssignTask(room.ID, nil, nil, "tester")
	assert.ErrorIs(t, err, ErrNoStaffAssigned)

	var count int64
	db.Model(&models.CleaningTask{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAssignTaskRoomNotFound(t *testing.T) {
	db := setupAssignmentTestDB(t)
	svc := NewAssignmentService(db)

	_, err := svc.AssignTask(999, []uint{1}, nil, "tester")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdateTaskAssignmentReplacesSet(t *testing.T) {
	db := setupAssignmentTestDB(t)
	room, staff := seedRoomAndStaff(t, db, 3)
	svc := NewAssignmentService(db)

	task, err := svc.AssignTask(room.ID, []uint{staff[0].ID}, nil, "tester")
	assert.NoError(t, err)

	updated, err := svc.UpdateTaskAssignment(task.ID, []uint{staff[1].ID, staff[2].ID}, nil, "tester")
	assert.NoError(t, err)
	assert.Len(t, updated.Assignments, 2)
	assert.Equal(t, staff[1].ID, *updated.StaffID)

	// Reassigning the same pair again must not grow the set.
	updated, err = svc.UpdateTaskAssignment(task.ID, []uint{staff[1].ID, staff[2].ID}, nil, "tester")
	assert.NoError(t, err)

	var count int64
	db.Model(&models.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&count)
	assert.Equal(t, int64(2), count)
	assert.NotContains(t, assigneeIDs(updated), staff[0].ID)
}

func TestUpdateTaskAssignmentTaskNotFound(t *testing.T) {
	db := setupAssignmentTestDB(t)
	svc := NewAssignmentService(db)

	_, err := svc.UpdateTaskAssignment(42, []uint{1}, nil, "tester")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestAssignedRoomsByStaff(t *testing.T) {
	db := setupAssignmentTestDB(t)
	room, staff := seedRoomAndStaff(t, db, 2)
	room2 := models.Room{RoomNumber: "102", Cottage: "Garden", Status: models.RoomStatusDirty}
	assert.NoError(t, db.Create(&room2).Error)

	svc := NewAssignmentService(db)
	_, err := svc.AssignTask(room.ID, []uint{staff[0].ID}, nil, "tester")
	assert.NoError(t, err)
	_, err = svc.AssignTask(room2.ID, []uint{staff[0].ID, staff[1].ID}, nil, "tester")
	assert.NoError(t, err)

	// A second task on the same room must not duplicate the room id.
	_, err = svc.AssignTask(room.ID, []uint{staff[0].ID}, nil, "tester")
	assert.NoError(t, err)

	// Terminal tasks drop out of the projection.
	doneTask, err := svc.AssignTask(room2.ID, []uint{staff[1].ID}, nil, "tester")
	assert.NoError(t, err)
	assert.NoError(t, db.Model(&models.CleaningTask{}).Where("id = ?", doneTask.ID).
		Update("status", models.TaskStatusCancelled).Error)

	projection, err := svc.AssignedRoomsByStaff()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint{room.ID, room2.ID}, projection[staff[0].ID])
	assert.ElementsMatch(t, []uint{room2.ID}, projection[staff[1].ID])
}

func assigneeIDs(task *models.CleaningTask) []uint {
	ids := make([]uint, 0, len(task.Assignments))
	for _, a := range task.Assignments {
		ids = append(ids, a.StaffID)
	}
	return ids
}
