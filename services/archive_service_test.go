package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

func setupArchiveTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Room{}, &models.CleaningTask{},
		&models.TaskAssignment{}, &models.CleaningTaskArchive{})
	assert.NoError(t, err)
	return db
}

func TestArchiveTerminalTasks(t *testing.T) {
	db := setupArchiveTestDB(t)
	room := models.Room{RoomNumber: "501", Cottage: "Forest", Status: models.RoomStatusClean}
	assert.NoError(t, db.Create(&room).Error)

	old := time.Now().Add(-60 * 24 * time.Hour)
	makeTask := func(status string, updatedAt time.Time) models.CleaningTask {
		task := models.CleaningTask{
			RoomID:        room.ID,
			Status:        status,
			ScheduledDate: updatedAt,
		}
		assert.NoError(t, db.Create(&task).Error)
		// Set updated_at directly; gorm stamps it on create.
		assert.NoError(t, db.Model(&models.CleaningTask{}).Where("id = ?", task.ID).
			UpdateColumn("updated_at", updatedAt).Error)
		return task
	}

	oldCompleted := makeTask(models.TaskStatusCompleted, old)
	oldCancelled := makeTask(models.TaskStatusCancelled, old)
	recentCompleted := makeTask(models.TaskStatusCompleted, time.Now())
	oldPending := makeTask(models.TaskStatusPending, old)

	assignment := models.TaskAssignment{TaskID: oldCompleted.ID, StaffID: 1, AssignedAt: old}
	assert.NoError(t, db.Create(&assignment).Error)

	svc := NewArchiveService(db)
	archived, err := svc.ArchiveTerminalTasks(time.Now().Add(-30 * 24 * time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 2, archived)

	var remaining []models.CleaningTask
	assert.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 2)
	remainingIDs := []uint{remaining[0].ID, remaining[1].ID}
	assert.ElementsMatch(t, []uint{recentCompleted.ID, oldPending.ID}, remainingIDs)

	var archivedRows []models.CleaningTaskArchive
	assert.NoError(t, db.Find(&archivedRows).Error)
	assert.Len(t, archivedRows, 2)
	archivedIDs := []uint{archivedRows[0].ID, archivedRows[1].ID}
	assert.ElementsMatch(t, []uint{oldCompleted.ID, oldCancelled.ID}, archivedIDs)

	var assignmentCount int64
	db.Model(&models.TaskAssignment{}).Where("task_id = ?", oldCompleted.ID).Count(&assignmentCount)
	assert.Equal(t, int64(0), assignmentCount)
}

func TestArchiveTerminalTasksNothingToDo(t *testing.T) {
	db := setupArchiveTestDB(t)
	svc := NewArchiveService(db)

	archived, err := svc.ArchiveTerminalTasks(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, archived)
}
