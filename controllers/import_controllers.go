package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

type ImportController struct {
	DB     *gorm.DB
	Import *services.TaskImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{
		DB:     db,
		Import: services.NewTaskImportService(db),
	}
}

// ImportTasks -> bulk-load cleaning tasks from an uploaded CSV
func (ic *ImportController) ImportTasks(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	result, err := ic.Import.ImportCSV(file, fileHeader.Filename, actorName(c, ic.DB))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	broadcastStats(ic.DB)
	utils.RespondJSON(c, http.StatusOK, "Tasks imported", result)
}
