package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

func setupRoomLogTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Room{}, &models.RoomLog{})
	assert.NoError(t, err)
	return db
}

func setupRoomLogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logCtrl := NewRoomLogController(db)
	router.GET("/room-logs", logCtrl.GetRoomLogs)
	router.POST("/room-logs", logCtrl.CreateRoomLog)
	return router
}

func TestGetRoomLogsFilteredByRoom(t *testing.T) {
	db := setupRoomLogTestDB(t)
	roomA := models.Room{RoomNumber: "101", Cottage: "Garden", Status: models.RoomStatusDirty}
	roomB := models.Room{RoomNumber: "102", Cottage: "Garden", Status: models.RoomStatusDirty}
	db.Create(&roomA)
	db.Create(&roomB)

	db.Create(&models.RoomLog{RoomID: roomA.ID, LogType: models.LogTaskAssigned,
		UserName: "tester", LogTimestamp: time.Now().Add(-time.Hour)})
	db.Create(&models.RoomLog{RoomID: roomA.ID, LogType: models.LogTaskCompleted,
		UserName: "tester", LogTimestamp: time.Now()})
	db.Create(&models.RoomLog{RoomID: roomB.ID, LogType: models.LogEarlyCheckout,
		UserName: "tester", LogTimestamp: time.Now()})

	router := setupRoomLogRouter(db)
	req, _ := http.NewRequest("GET", fmt.Sprintf("/room-logs?room_id=%d", roomA.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	// Newest first.
	first := data[0].(map[string]interface{})
	assert.Equal(t, models.LogTaskCompleted, first["log_type"])
}

func TestCreateRoomLog(t *testing.T) {
	db := setupRoomLogTestDB(t)
	room := models.Room{RoomNumber: "103", Cottage: "Garden", Status: models.RoomStatusDirty}
	db.Create(&room)
	router := setupRoomLogRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"room_id":  room.ID,
		"log_type": "Inspection",
		"notes":    "minibar restocked",
	})
	req, _ := http.NewRequest("POST", "/room-logs", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Inspection", data["log_type"])
	// No context user: audit entries fall back to "system".
	assert.Equal(t, "system", data["user_name"])
}
