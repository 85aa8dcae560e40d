package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/realtime"
	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

type AdminController struct {
	DB      *gorm.DB
	Archive *services.ArchiveService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		DB:      db,
		Archive: services.NewArchiveService(db),
	}
}

// GetDashboardStats -> current counters, scoped like every other read
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats := computeStats(ac.DB, cottageScope(c, ac.DB))

	realtime.BroadcastDashboardUpdate(stats)
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// ArchiveTasks -> manager-only; moves terminal tasks older than ?days= to
// the archive table
func (ac *AdminController) ArchiveTasks(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "manager" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid days: %q", raw))
			return
		}
		days = parsed
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	archived, err := ac.Archive.ArchiveTerminalTasks(cutoff)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Archived %d terminal tasks older than %d day(s)", archived, days)
	utils.RespondJSON(c, http.StatusOK, "Tasks archived", gin.H{
		"archived": archived,
	})
}
