package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
)

// ErrNoPermission is returned when a role check fails.
var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// cottageScope resolves the cottage filter for a request: an explicit
// ?cottage= parameter wins, otherwise the signed-in user's assigned
// cottage. Empty means unscoped.
func cottageScope(c *gin.Context, db *gorm.DB) string {
	if cottage := c.Query("cottage"); cottage != "" {
		return cottage
	}

	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return ""
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return ""
	}
	return user.AssignedCottage
}

// actorName resolves the acting user's display name for audit entries.
func actorName(c *gin.Context, db *gorm.DB) string {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return "system"
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return "system"
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return "system"
	}
	return user.Name
}
