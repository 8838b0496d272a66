package service

import (
	"errors"
	"fmt"
	"time"

	"club-portal-backend/internal/auth"
	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// VerificationPurpose names the flow a passcode verification completed
type VerificationPurpose string

const (
	PurposeRegistration  VerificationPurpose = "registration"
	PurposePasswordReset VerificationPurpose = "password_reset"
)

// AuthService handles registration, login and the passcode-backed flows
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	passcodes PasscodeServiceInterface
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepositoryInterface, passcodes PasscodeServiceInterface, tokens *auth.TokenService, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		passcodes: passcodes,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new account
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Course    string `json:"course" validate:"max=100"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest represents the unified passcode verification request
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"otp_code" validate:"required,len=6"`
}

// PasswordResetRequest asks for a reset passcode to be emailed
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes a password reset after verification
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Course    string    `json:"course"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the access token and the account it belongs to
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VerifyOTPResponse reports which flow the verification completed
type VerifyOTPResponse struct {
	Purpose VerificationPurpose `json:"purpose"`
}

// Register creates a new inactive account and issues a registration
// passcode. A DeliveryError is returned alongside the created account when
// the passcode email cannot be sent; the account and passcode still exist.
func (s *AuthService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.userRepo.GetByUsername(req.Username); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrUsernameExists
	}

	if existing, err := s.userRepo.GetByEmail(req.Email); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Course:       req.Course,
		IsActive:     false,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := toUserResponse(user)
	if _, err := s.passcodes.Issue(user); err != nil {
		// The account exists either way; surface the delivery failure.
		return resp, err
	}

	return resp, nil
}

// Login authenticates an active account and returns a signed access token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountNotActive
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// VerifyOTP runs the unified verification endpoint. The flow is inferred
// from the account's active flag at call time rather than an explicit
// discriminator: an inactive account is treated as completing registration
// (and gets activated), an active one as authorizing a password reset.
func (s *AuthService) VerifyOTP(req *VerifyOTPRequest) (*VerifyOTPResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Decide the purpose before verification so a concurrent activation
	// cannot flip the interpretation mid-flight.
	purpose := PurposePasswordReset
	if !user.IsActive {
		purpose = PurposeRegistration
	}

	if _, err := s.passcodes.Verify(user, req.Code); err != nil {
		return nil, err
	}

	if purpose == PurposeRegistration {
		user.IsActive = true
		if err := s.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to activate account: %w", err)
		}
	}

	return &VerifyOTPResponse{Purpose: purpose}, nil
}

// RequestPasswordReset issues a reset passcode for an active account
func (s *AuthService) RequestPasswordReset(req *PasswordResetRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return apperrors.ErrAccountNotActive
	}

	if _, err := s.passcodes.Issue(user); err != nil {
		return err
	}
	return nil
}

// ResetPassword sets a new password for an account holding a verified,
// unexpired passcode, consuming (deleting) the passcode on success.
func (s *AuthService) ResetPassword(req *ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passcodes.ConsumeVerified(user); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Course:    user.Course,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
