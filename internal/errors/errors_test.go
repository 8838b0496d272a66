package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "community"}
		assert.Equal(t, "community not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "community"}
		err2 := &NotFoundError{Entity: "community"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "community"}
		err2 := &NotFoundError{Entity: "club"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCommunityNotFound, ErrCommunityNotFound))
		assert.False(t, errors.Is(ErrCommunityNotFound, ErrClubNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCommunityNotFound))
		assert.False(t, IsNotFound(ErrDuplicateExecutives))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "community", Context: "with this name in the club"}
		assert.Equal(t, "community already exists with this name in the club", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "username"}
		assert.Equal(t, "username already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "membership", Context: "in the community"}
		err2 := &AlreadyExistsError{Entity: "membership", Context: "in the community"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCommunityExists))
		assert.True(t, IsAlreadyExists(ErrDuplicateMembership))
		assert.False(t, IsAlreadyExists(ErrCommunityNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrCommunityNotFound))
	})
}

func TestExecutiveConflictError(t *testing.T) {
	t.Run("Error message names the account", func(t *testing.T) {
		err := NewExecutiveConflictError("lead@university.edu")
		assert.Equal(t, "user lead@university.edu is already an executive in another community", err.Error())
	})

	t.Run("IsExecutiveConflict helper", func(t *testing.T) {
		assert.True(t, IsExecutiveConflict(NewExecutiveConflictError("lead@university.edu")))
		assert.False(t, IsExecutiveConflict(ErrDuplicateExecutives))
	})

	t.Run("Detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create failed: %w", NewExecutiveConflictError("lead@university.edu"))
		assert.True(t, IsExecutiveConflict(wrapped))
	})
}

func TestCapExceededError(t *testing.T) {
	t.Run("Error message carries the limit", func(t *testing.T) {
		err := NewCapExceededError(3)
		assert.Equal(t, "you cannot join more than 3 communities", err.Error())
	})

	t.Run("IsCapExceeded helper", func(t *testing.T) {
		assert.True(t, IsCapExceeded(NewCapExceededError(3)))
		assert.False(t, IsCapExceeded(ErrDuplicateMembership))
	})
}

func TestDeliveryError(t *testing.T) {
	t.Run("Error message wraps the cause", func(t *testing.T) {
		cause := errors.New("smtp connection refused")
		err := NewDeliveryError(cause)
		assert.Equal(t, "failed to deliver notification: smtp connection refused", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("smtp connection refused")
		err := NewDeliveryError(cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsDelivery helper", func(t *testing.T) {
		assert.True(t, IsDelivery(NewDeliveryError(errors.New("smtp down"))))
		assert.False(t, IsDelivery(errors.New("smtp down")))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrAccountNotActive))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "you are not authorized to do this", ErrNotResourceOwner.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotResourceOwner))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("Detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("update failed: %w", ErrNotResourceOwner)
		assert.True(t, IsAuthorization(wrapped))
	})
}

func TestContentErrors(t *testing.T) {
	t.Run("Not-found sentinels", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMembershipNotFound))
		assert.True(t, IsNotFound(ErrBlogNotFound))
		assert.True(t, IsNotFound(ErrCommentNotFound))
	})

	t.Run("Subscriber duplicate", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSubscriberExists))
		assert.Equal(t, "subscriber already exists with this email", ErrSubscriberExists.Error())
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Passcode errors", func(t *testing.T) {
		assert.Error(t, ErrPasscodeNotFound)
		assert.Error(t, ErrPasscodeExpired)
		assert.Error(t, ErrPasscodeMismatch)
		assert.Error(t, ErrNoVerifiedPasscode)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrNoExecutiveAssigned)
		assert.Error(t, ErrDuplicateExecutives)
		assert.Error(t, ErrAccountNotActive)
		assert.Error(t, ErrInvalidPaginationParams)
	})
}
