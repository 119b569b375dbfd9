package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pulsefit/fitness-app/internal/diet"
	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type PreferencesPayload struct {
	Goal        domain.Goal  `json:"goal" binding:"required,oneof='weight loss' 'muscle gain' strength endurance flexibility"`
	Level       domain.Level `json:"level" binding:"required,oneof=beginner intermediate expert"`
	DaysPerWeek int          `json:"daysPerWeek" binding:"required,oneof=3 4 5"`
	Equipment   []string     `json:"equipment"`
}

func (p PreferencesPayload) toDomain() domain.Preferences {
	return domain.Preferences{
		Goal:        p.Goal,
		Level:       p.Level,
		DaysPerWeek: p.DaysPerWeek,
		Equipment:   p.Equipment,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	Gender              domain.Gender        `json:"gender" binding:"omitempty,oneof=male female other"`
	Age                 int                  `json:"age" binding:"omitempty,gte=13,lte=120"`
	WeightKg            float64              `json:"weightKg" binding:"omitempty,gt=0"`
	HeightCm            float64              `json:"heightCm" binding:"omitempty,gt=0"`
	ActivityLevel       domain.ActivityLevel `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate very_active"`
	DietaryRestrictions []string             `json:"dietaryRestrictions"`
	Preferences         PreferencesPayload   `json:"preferences" binding:"required"`
}

// UserResponse excludes sensitive info like password hash.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Preferences domain.Preferences `json:"preferences"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Targets diet.Targets `json:"dietTargets"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a user account from the signup form plus the onboarding
// answers and returns the account together with its daily diet targets.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, targets, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		Gender:              req.Gender,
		Age:                 req.Age,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivityLevel:       req.ActivityLevel,
		DietaryRestrictions: req.DietaryRestrictions,
		Preferences:         req.Preferences.toDomain(),
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:    MapUserToResponse(user),
		Targets: targets,
	})
}

// Login authenticates a user and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID.Hex(),
		Name:        user.Name,
		Email:       user.Email,
		Preferences: user.Preferences,
		CreatedAt:   user.CreatedAt,
	}
}
