package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

var (
	ErrTableIDRequired = &CustomError{"table_id is required"}
	ErrUnknownStatus   = &CustomError{"status must be one of available, occupied, reserved, unavailable"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// statusFor maps floor-plan errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, floorplan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, floorplan.ErrTableTooSmall):
		return http.StatusUnprocessableEntity
	case errors.Is(err, floorplan.ErrTableUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondFloorError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	utils.RespondError(c, code, err)
}
