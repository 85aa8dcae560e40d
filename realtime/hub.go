package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/alayamreception/hotel-house-harmony/models"
)

// Event types
const (
	EventRoomCreate      = "room_create"
	EventRoomUpdate      = "room_update"
	EventRoomDelete      = "room_delete"
	EventTaskCreate      = "task_create"
	EventTaskUpdate      = "task_update"
	EventStaffNotif      = "staff_notification"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard client (housekeeper, supervisor,
// manager) keyed by role.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the set with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient releases a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastRoomCreate announces a newly added room.
func BroadcastRoomCreate(room models.Room) {
	broadcast(Message{Event: EventRoomCreate, Data: room})
}

// BroadcastRoomUpdate announces a room status or flag change.
func BroadcastRoomUpdate(room models.Room) {
	broadcast(Message{Event: EventRoomUpdate, Data: room})
}

// BroadcastRoomDelete announces a removed room.
func BroadcastRoomDelete(room models.Room) {
	broadcast(Message{Event: EventRoomDelete, Data: room})
}

// BroadcastTaskCreate announces a new cleaning task.
func BroadcastTaskCreate(task models.CleaningTask) {
	broadcast(Message{Event: EventTaskCreate, Data: task})
}

// BroadcastTaskUpdate announces a task status or assignment change.
func BroadcastTaskUpdate(task models.CleaningTask) {
	broadcast(Message{Event: EventTaskUpdate, Data: task})
}

// BroadcastStaffNotification sends a plain text notice to every client.
func BroadcastStaffNotification(message string) {
	broadcast(Message{Event: EventStaffNotif, Data: message})
}

// BroadcastDashboardUpdate pushes recomputed dashboard stats.
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
