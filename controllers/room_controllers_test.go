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

func setupRoomTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Room{}, &models.CleaningTask{},
		&models.RoomLog{})
	assert.NoError(t, err)
	return db
}

func setupRoomRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	roomCtrl := NewRoomController(db)
	router.GET("/rooms", roomCtrl.GetAllRooms)
	router.POST("/rooms", roomCtrl.CreateRoom)
	router.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
	router.PATCH("/rooms/:room_id/status", roomCtrl.UpdateRoomStatus)
	router.POST("/rooms/:room_id/early-checkout", roomCtrl.MarkEarlyCheckout)
	router.POST("/rooms/:room_id/extend-stay", roomCtrl.ExtendRoomStay)
	router.GET("/cottages", roomCtrl.GetCottages)
	return router
}

func TestGetAllRoomsCottageFilter(t *testing.T) {
	db := setupRoomTestDB(t)
	db.Create(&models.Room{RoomNumber: "101", Cottage: "Garden", Status: models.RoomStatusDirty})
	db.Create(&models.Room{RoomNumber: "201", Cottage: "Hillside", Status: models.RoomStatusClean})

	router := setupRoomRouter(db)
	req, _ := http.NewRequest("GET", "/rooms?cottage=Garden", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "List of rooms", response["message"])

	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	room := data[0].(map[string]interface{})
	assert.Equal(t, "101", room["room_number"])
}

func TestCreateRoomDefaults(t *testing.T) {
	db := setupRoomTestDB(t)
	router := setupRoomRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"room_number": "102",
		"cottage":     "Garden",
	})
	req, _ := http.NewRequest("POST", "/rooms", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.RoomStatusDirty, data["status"])
	assert.Equal(t, float64(1), data["priority"])
}

func TestCreateRoomMissingFields(t *testing.T) {
	db := setupRoomTestDB(t)
	router := setupRoomRouter(db)

	req, _ := http.NewRequest("POST", "/rooms", bytes.NewBufferString(`{"notes":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRoomStatusEndpoint(t *testing.T) {
	db := setupRoomTestDB(t)
	room := models.Room{RoomNumber: "103", Cottage: "Garden", Status: models.RoomStatusDirty}
	db.Create(&room)
	router := setupRoomRouter(db)

	payload, _ := json.Marshal(map[string]string{"status": models.RoomStatusClean})
	url := fmt.Sprintf("/rooms/%d/status", room.ID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Room status updated", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.RoomStatusClean, data["status"])
	assert.NotNil(t, data["last_cleaned"])
}

func TestMarkEarlyCheckoutEndpoint(t *testing.T) {
	db := setupRoomTestDB(t)
	room := models.Room{RoomNumber: "104", Cottage: "Garden", Status: models.RoomStatusOccupied}
	db.Create(&room)
	router := setupRoomRouter(db)

	url := fmt.Sprintf("/rooms/%d/early-checkout", room.ID)
	req, _ := http.NewRequest("POST", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["task_created"])
	roomData := data["room"].(map[string]interface{})
	assert.Equal(t, true, roomData["early_checkout"])
}

func TestExtendRoomStayEndpointNoTasks(t *testing.T) {
	db := setupRoomTestDB(t)
	room := models.Room{RoomNumber: "105", Cottage: "Garden", Status: models.RoomStatusOccupied}
	db.Create(&room)
	router := setupRoomRouter(db)

	url := fmt.Sprintf("/rooms/%d/extend-stay", room.ID)
	req, _ := http.NewRequest("POST", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtendRoomStayEndpoint(t *testing.T) {
	db := setupRoomTestDB(t)
	room := models.Room{RoomNumber: "106", Cottage: "Garden", Status: models.RoomStatusOccupied}
	db.Create(&room)
	db.Create(&models.CleaningTask{
		RoomID:        room.ID,
		Status:        models.TaskStatusPending,
		ScheduledDate: time.Now(),
	})
	router := setupRoomRouter(db)

	url := fmt.Sprintf("/rooms/%d/extend-stay", room.ID)
	req, _ := http.NewRequest("POST", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["checkout_extended"])
}

func TestGetCottages(t *testing.T) {
	db := setupRoomTestDB(t)
	db.Create(&models.Room{RoomNumber: "101", Cottage: "Garden", Status: models.RoomStatusDirty})
	db.Create(&models.Room{RoomNumber: "102", Cottage: "Garden", Status: models.RoomStatusDirty})
	db.Create(&models.Room{RoomNumber: "201", Cottage: "Hillside", Status: models.RoomStatusDirty})

	router := setupRoomRouter(db)
	req, _ := http.NewRequest("GET", "/cottages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Equal(t, []interface{}{"Garden", "Hillside"}, data)
}
