package service

import (
	"context"
	"errors"
	"time"

	"pulsefit/fitness-app/internal/diet"
	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidUserID        = errors.New("invalid user id")
)

// RegisterInput carries the signup form plus the onboarding answers collected
// in the same flow.
type RegisterInput struct {
	Name     string
	Email    string
	Password string

	Gender              domain.Gender
	Age                 int
	WeightKg            float64
	HeightCm            float64
	ActivityLevel       domain.ActivityLevel
	DietaryRestrictions []string
	Preferences         domain.Preferences
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, diet.Targets, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) error
	// DietTargets recomputes the daily intake targets from the stored profile.
	DietTargets(ctx context.Context, userID string) (diet.Targets, error)
	GetJWTSecret() string
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration together with the onboarding
// answers, and returns the computed daily diet targets alongside the user.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, diet.Targets, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, diet.Targets{}, errors.New("name, email and password cannot be empty")
	}

	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, diet.Targets{}, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, diet.Targets{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, diet.Targets{}, ErrHashingFailed
	}

	user := &domain.User{
		Name:                input.Name,
		Email:               input.Email,
		PasswordHash:        string(hashedPassword),
		Gender:              input.Gender,
		Age:                 input.Age,
		WeightKg:            input.WeightKg,
		HeightCm:            input.HeightCm,
		ActivityLevel:       input.ActivityLevel,
		DietaryRestrictions: input.DietaryRestrictions,
		Preferences:         input.Preferences,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique email index catches the race between the existence check
		// and the insert.
		return nil, diet.Targets{}, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, diet.TargetsFor(user), nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		err = errors.New("email and password cannot be empty")
		return
	}

	user, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed
			return
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		err = ErrAuthenticationFailed
		user = nil
		return
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// UpdatePreferences replaces the stored onboarding preferences, e.g. when the
// user changes goal or schedule before regenerating their plan.
func (s *authService) UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	oid, err := primitiveObjectID(userID)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePreferences(ctx, oid, prefs)
}

// DietTargets loads the user's profile and derives the daily calorie and
// macro targets from it.
func (s *authService) DietTargets(ctx context.Context, userID string) (diet.Targets, error) {
	oid, err := primitiveObjectID(userID)
	if err != nil {
		return diet.Targets{}, err
	}
	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return diet.Targets{}, err
	}
	return diet.TargetsFor(user), nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pulsefit",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
