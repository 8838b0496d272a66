package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "club-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// APIResponse is the envelope every endpoint responds with
type APIResponse struct {
	Message string      `json:"message"`
	Status  string      `json:"status" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Message: message,
		Status:  "success",
		Data:    data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Message: message,
		Status:  "error",
	})
}

// handleServiceError maps domain errors to HTTP statuses. Anything unmapped
// is a 500 with a generic message so internals never leak.
func handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err), errors.Is(err, apperrors.ErrPasscodeNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err):
		respondError(c, http.StatusConflict, err.Error())
	case apperrors.IsExecutiveConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	case apperrors.IsCapExceeded(err):
		respondError(c, http.StatusForbidden, err.Error())
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrAccountNotActive):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrPasscodeExpired),
		errors.Is(err, apperrors.ErrPasscodeMismatch),
		errors.Is(err, apperrors.ErrNoVerifiedPasscode),
		errors.Is(err, apperrors.ErrDuplicateExecutives),
		errors.Is(err, apperrors.ErrNoExecutiveAssigned):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID reads the authenticated account's ID placed on the context
// by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	id, ok := value.(uuid.UUID)
	if !exists || !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
