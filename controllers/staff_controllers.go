package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

type StaffController struct {
	DB          *gorm.DB
	Assignments *services.AssignmentService
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{
		DB:          db,
		Assignments: services.NewAssignmentService(db),
	}
}

// GetAllStaff -> list staff with their derived assigned rooms
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	query := sc.DB.Model(&models.Staff{})
	if cottage := cottageScope(c, sc.DB); cottage != "" {
		query = query.Where("cottage = ? OR cottage = ''", cottage)
	}

	var staff []models.Staff
	if err := query.Order("name").Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	projection, err := sc.Assignments.AssignedRoomsByStaff()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for i := range staff {
		staff[i].AssignedRooms = projection[staff[i].ID]
		if staff[i].AssignedRooms == nil {
			staff[i].AssignedRooms = []uint{}
		}
	}

	utils.RespondJSON(c, http.StatusOK, "List of staff", staff)
}

// CreateStaff -> add a staff member
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Role    string `json:"role"`
		Shift   string `json:"shift"`
		Avatar  string `json:"avatar"`
		Cottage string `json:"cottage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	member := models.Staff{
		Name:    req.Name,
		Role:    "Housekeeper",
		Shift:   "Morning",
		Avatar:  req.Avatar,
		Cottage: req.Cottage,
	}
	if req.Role != "" {
		member.Role = req.Role
	}
	if req.Shift != "" {
		member.Shift = req.Shift
	}

	if err := sc.DB.Create(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	member.AssignedRooms = []uint{}

	utils.InfoLogger.Printf("New staff member: %s (role=%s, shift=%s)",
		member.Name, member.Role, member.Shift)
	utils.RespondJSON(c, http.StatusCreated, "Staff member created", member)
}

// GetStaffByID -> detail of one staff member with derived assigned rooms
func (sc *StaffController) GetStaffByID(c *gin.Context) {
	staffID, ok := paramUint(c, "staff_id")
	if !ok {
		return
	}

	var member models.Staff
	if err := sc.DB.First(&member, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	projection, err := sc.Assignments.AssignedRoomsByStaff()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	member.AssignedRooms = projection[member.ID]
	if member.AssignedRooms == nil {
		member.AssignedRooms = []uint{}
	}

	utils.RespondJSON(c, http.StatusOK, "Staff detail", member)
}
