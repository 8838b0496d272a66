package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/logger"
	"club-portal-backend/internal/mailer"
	"club-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// PasscodeService issues and verifies the short-lived codes used for
// registration activation and password-reset authorization.
type PasscodeService struct {
	repo   repository.PasscodeRepositoryInterface
	sender mailer.Sender
}

// NewPasscodeService creates a new passcode service
func NewPasscodeService(repo repository.PasscodeRepositoryInterface, sender mailer.Sender) *PasscodeService {
	return &PasscodeService{
		repo:   repo,
		sender: sender,
	}
}

// Issue generates and stores a fresh passcode for the account, then emails
// it. Every prior unverified passcode is soft-invalidated first (expiry
// forced to now). The stored passcode is NOT rolled back when delivery
// fails; the caller receives the passcode alongside a DeliveryError so the
// gap is at least visible.
func (s *PasscodeService) Issue(user *models.User) (*models.Passcode, error) {
	now := time.Now()

	if err := s.repo.InvalidateUnverified(user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to invalidate previous passcodes: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate passcode: %w", err)
	}

	passcode := &models.Passcode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: now.Add(models.PasscodeTTL),
		Verified:  false,
	}
	if err := s.repo.Create(passcode); err != nil {
		return nil, fmt.Errorf("failed to store passcode: %w", err)
	}

	if err := s.sender.Send(user.Email, "Your verification code", mailer.PasscodeBody(code)); err != nil {
		logger.New().WithField("user", user.Email).Errorf("passcode email delivery failed: %v", err)
		return passcode, apperrors.NewDeliveryError(err)
	}

	return passcode, nil
}

// Verify checks the submitted code against the account's most recently
// issued unverified passcode. On a match before expiry the verified flag is
// flipped and persisted; the row is left for the consuming flow to clean up.
func (s *PasscodeService) Verify(user *models.User, submittedCode string) (*models.Passcode, error) {
	passcode, err := s.repo.GetLatestUnverified(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPasscodeNotFound
		}
		return nil, fmt.Errorf("failed to look up passcode: %w", err)
	}

	if passcode.Expired(time.Now()) {
		return nil, apperrors.ErrPasscodeExpired
	}

	// Exact string equality on the 6-digit code.
	if submittedCode != passcode.Code {
		return nil, apperrors.ErrPasscodeMismatch
	}

	passcode.Verified = true
	if err := s.repo.Update(passcode); err != nil {
		return nil, fmt.Errorf("failed to mark passcode verified: %w", err)
	}

	return passcode, nil
}

// ConsumeVerified checks that the account holds a verified, unexpired
// passcode and deletes it. Used by the password-reset completion step.
func (s *PasscodeService) ConsumeVerified(user *models.User) error {
	passcode, err := s.repo.GetLatestVerified(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoVerifiedPasscode
		}
		return fmt.Errorf("failed to look up verified passcode: %w", err)
	}

	if passcode.Expired(time.Now()) {
		return apperrors.ErrNoVerifiedPasscode
	}

	if err := s.repo.Delete(passcode.ID); err != nil {
		return fmt.Errorf("failed to consume passcode: %w", err)
	}

	return nil
}

// generateCode returns a 6-digit numeric code from crypto/rand
func generateCode() (string, error) {
	const digits = "0123456789"
	code := make([]byte, 6)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}
