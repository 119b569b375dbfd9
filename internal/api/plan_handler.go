package api

import (
	"errors"
	"fmt"
	"net/http"

	"pulsefit/fitness-app/internal/dates"
	"pulsefit/fitness-app/internal/planner"
	"pulsefit/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler exposes workout plan generation.
type PlanHandler struct {
	planService planner.Service
	authService service.AuthService
}

func NewPlanHandler(planService planner.Service, authService service.AuthService) *PlanHandler {
	return &PlanHandler{planService: planService, authService: authService}
}

type GeneratePlanRequest struct {
	Preferences PreferencesPayload `json:"preferences" binding:"required"`
	// StartDate is optional; it defaults to the app's current date.
	StartDate string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
}

// GeneratePlan builds a plan from the submitted preferences, persists its
// sessions and timeline, and stores the preferences on the profile so the
// next regeneration starts from them.
func (h *PlanHandler) GeneratePlan(currentDate func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := getUserIDFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}

		var req GeneratePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}

		start := req.StartDate
		if start == "" {
			start = currentDate()
		}
		startDate, err := dates.Parse(start)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid start date")
			return
		}

		prefs := req.Preferences.toDomain()
		plan, err := h.planService.GeneratePlan(c.Request.Context(), userID, prefs, startDate)
		if err != nil {
			switch {
			case errors.Is(err, planner.ErrNoMatchingExercises):
				abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			case errors.Is(err, planner.ErrUnsupportedSchedule):
				abortWithError(c, http.StatusBadRequest, err.Error())
			default:
				abortWithError(c, http.StatusInternalServerError, "Failed to generate plan")
			}
			return
		}

		// Best effort: plan generation succeeded even if the profile write fails.
		_ = h.authService.UpdatePreferences(c.Request.Context(), userID, prefs)

		c.JSON(http.StatusCreated, plan)
	}
}
