package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alayamreception/hotel-house-harmony/services"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// paramUint parses a numeric path parameter, responding 400 on garbage.
func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s: %q", name, raw))
		return 0, false
	}
	return uint(value), true
}

// statusForServiceError maps service errors onto HTTP status codes.
func statusForServiceError(err error) int {
	var invalidTransition *services.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrNoTasksForRoom):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNoStaffAssigned),
		errors.Is(err, services.ErrCancelReasonRequired),
		errors.As(err, &invalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
