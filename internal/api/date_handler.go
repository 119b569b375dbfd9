package api

import (
	"fmt"
	"net/http"

	"pulsefit/fitness-app/internal/appdate"

	"github.com/gin-gonic/gin"
)

// DateHandler exposes the app's current date and the date-change operation
// that drives timeline synchronization.
type DateHandler struct {
	dateContext *appdate.Context
}

func NewDateHandler(dateContext *appdate.Context) *DateHandler {
	return &DateHandler{dateContext: dateContext}
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// CurrentDate returns the app's current date.
func (h *DateHandler) CurrentDate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"date": h.dateContext.Current()})
}

// SetDate moves the current date forward (or backward) for the caller. The
// sync outcome is reported alongside the new date; the date change itself
// always takes effect.
func (h *DateHandler) SetDate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result := h.dateContext.SetCurrentDate(c.Request.Context(), userID, req.Date)
	c.JSON(http.StatusOK, gin.H{
		"date": h.dateContext.Current(),
		"sync": result,
	})
}
