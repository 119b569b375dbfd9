package api

import (
	"errors"
	"net/http"

	"pulsefit/fitness-app/internal/repository"
	"pulsefit/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the home screen data: today's session, the session
// list, exercise completion and profile diet targets.
type SessionHandler struct {
	sessionService service.SessionService
	authService    service.AuthService
	currentDate    func() string
}

func NewSessionHandler(
	sessionService service.SessionService,
	authService service.AuthService,
	currentDate func() string,
) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		authService:    authService,
		currentDate:    currentDate,
	}
}

// TodaySession returns the timeline entries scheduled for the app's current
// date.
func (h *SessionHandler) TodaySession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	view, err := h.sessionService.TodaySession(c.Request.Context(), userID, h.currentDate())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load today's session")
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListSessions returns the user's workout session documents.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// CompleteExercise marks a timeline entry complete.
func (h *SessionHandler) CompleteExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	entryID := c.Param("entryId")
	if entryID == "" {
		abortWithError(c, http.StatusBadRequest, "Entry ID is missing")
		return
	}

	err = h.sessionService.CompleteExercise(c.Request.Context(), userID, entryID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "complete"})
	case errors.Is(err, service.ErrEntryNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEntryForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to complete exercise")
	}
}

// DietTargets recomputes the daily calorie and macro targets from the stored
// profile metrics.
func (h *SessionHandler) DietTargets(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	targets, err := h.authService.DietTargets(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserID):
			abortWithError(c, http.StatusBadRequest, "Invalid user ID")
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}

	c.JSON(http.StatusOK, targets)
}
