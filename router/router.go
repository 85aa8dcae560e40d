package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/controllers"
	"github.com/alayamreception/hotel-house-harmony/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	roomCtrl := controllers.NewRoomController(db)
	staffCtrl := controllers.NewStaffController(db)
	taskCtrl := controllers.NewTaskController(db)
	roomLogCtrl := controllers.NewRoomLogController(db)
	adminCtrl := controllers.NewAdminController(db)
	importCtrl := controllers.NewImportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/users", userCtrl.GetAllUsers)

	// ROOMS
	auth.GET("/rooms", roomCtrl.GetAllRooms)
	auth.POST("/rooms", roomCtrl.CreateRoom)
	auth.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
	auth.PATCH("/rooms/:room_id/status", roomCtrl.UpdateRoomStatus)
	auth.POST("/rooms/:room_id/early-checkout", roomCtrl.MarkEarlyCheckout)
	auth.POST("/rooms/:room_id/extend-stay", roomCtrl.ExtendRoomStay)
	auth.GET("/cottages", roomCtrl.GetCottages)

	// STAFF
	auth.GET("/staff", staffCtrl.GetAllStaff)
	auth.GET("/staff/:staff_id", staffCtrl.GetStaffByID)
	auth.POST("/staff", middlewares.RequireRole("supervisor"), staffCtrl.CreateStaff)

	// TASKS
	auth.GET("/tasks", taskCtrl.GetAllTasks)
	auth.GET("/tasks/:task_id", taskCtrl.GetTaskByID)
	auth.POST("/tasks", middlewares.RequireRole("supervisor"), taskCtrl.AssignTask)
	auth.PUT("/tasks/:task_id/assignments", middlewares.RequireRole("supervisor"), taskCtrl.UpdateTaskAssignment)
	auth.PATCH("/tasks/:task_id/status", taskCtrl.UpdateTaskStatus)
	auth.GET("/supervisors/:staff_id/tasks", taskCtrl.GetSupervisorTasks)

	// ROOM LOG (append-only)
	auth.GET("/room-logs", roomLogCtrl.GetRoomLogs)
	auth.POST("/room-logs", roomLogCtrl.CreateRoomLog)

	// DASHBOARD / ADMIN
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
	auth.POST("/tasks/archive", adminCtrl.ArchiveTasks)
	auth.POST("/tasks/import", middlewares.RequireRole("supervisor"), importCtrl.ImportTasks)

	// WebSocket endpoint, token passed as query parameter
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("", controllers.RealtimeHandler)
	}

	return r
}
