package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in the club"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ExecutiveConflictError is returned when an account named for a leadership
// slot already holds an executive role in some community. Carries the
// offending account's email so the caller can name it.
type ExecutiveConflictError struct {
	Email string
}

func (e *ExecutiveConflictError) Error() string {
	return fmt.Sprintf("user %s is already an executive in another community", e.Email)
}

// CapExceededError is returned when a join would put an email over the
// community membership cap.
type CapExceededError struct {
	Limit int
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("you cannot join more than %d communities", e.Limit)
}

// DeliveryError wraps a notification-channel failure. The write the
// notification was meant to confirm is not rolled back; the failure is
// logged and surfaced, never retried.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver notification: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when an authenticated account tries to act
// on a resource it does not own.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrClubNotFound        = &NotFoundError{Entity: "club"}
	ErrCommunityNotFound   = &NotFoundError{Entity: "community"}
	ErrEventNotFound       = &NotFoundError{Entity: "event"}
	ErrFeedbackNotFound    = &NotFoundError{Entity: "feedback"}
	ErrTestimonialNotFound = &NotFoundError{Entity: "testimonial"}
	ErrPartnerNotFound     = &NotFoundError{Entity: "partner"}
	ErrMembershipNotFound  = &NotFoundError{Entity: "membership"}
	ErrBlogNotFound        = &NotFoundError{Entity: "blog"}
	ErrCommentNotFound     = &NotFoundError{Entity: "comment"}
)

// Already Exists Errors
var (
	ErrUsernameExists      = &AlreadyExistsError{Entity: "username", Context: ""}
	ErrEmailExists         = &AlreadyExistsError{Entity: "email", Context: ""}
	ErrClubExists          = &AlreadyExistsError{Entity: "club", Context: "with this name"}
	ErrCommunityExists     = &AlreadyExistsError{Entity: "community", Context: "with this name in the club"}
	ErrPartnerExists       = &AlreadyExistsError{Entity: "partner", Context: "with this name"}
	ErrDuplicateMembership = &AlreadyExistsError{Entity: "membership", Context: "for this email in the community"}
	ErrSubscriberExists    = &AlreadyExistsError{Entity: "subscriber", Context: "with this email"}
)

// Passcode Errors
var (
	ErrPasscodeNotFound   = errors.New("no passcode found for this account, please request a new one")
	ErrPasscodeExpired    = errors.New("passcode has expired, please request a new one")
	ErrPasscodeMismatch   = errors.New("invalid passcode")
	ErrNoVerifiedPasscode = errors.New("no valid verified passcode found")
)

// Business Logic Errors
var (
	ErrNoExecutiveAssigned     = errors.New("at least one executive position (lead, co_lead or secretary) must be assigned")
	ErrDuplicateExecutives     = errors.New("a user cannot hold multiple executive positions in the same community")
	ErrAccountNotActive        = errors.New("account is not active, please verify your email first")
	ErrInvalidCredentials      = &AuthenticationError{Message: "invalid username or password"}
	ErrNotResourceOwner        = &AuthorizationError{Message: "you are not authorized to do this"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExecutiveConflict checks if an error is an ExecutiveConflictError
func IsExecutiveConflict(err error) bool {
	var conflictErr *ExecutiveConflictError
	return errors.As(err, &conflictErr)
}

// IsCapExceeded checks if an error is a CapExceededError
func IsCapExceeded(err error) bool {
	var capErr *CapExceededError
	return errors.As(err, &capErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewExecutiveConflictError creates an ExecutiveConflictError naming the account
func NewExecutiveConflictError(email string) error {
	return &ExecutiveConflictError{Email: email}
}

// NewCapExceededError creates a CapExceededError with the configured limit
func NewCapExceededError(limit int) error {
	return &CapExceededError{Limit: limit}
}

// NewDeliveryError wraps a notification-channel failure
func NewDeliveryError(err error) error {
	return &DeliveryError{Err: err}
}
