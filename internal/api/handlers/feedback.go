package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles HTTP requests for feedback
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// CreateFeedback stores a feedback submission
// @Summary Submit feedback
// @Description Store a feedback message from the public site
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body service.CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} APIResponse{data=service.FeedbackResponse} "Feedback submitted"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := h.feedbackService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "feedback submitted", feedback)
}

// GetFeedback retrieves a feedback entry by ID
// @Summary Get feedback by ID
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 200 {object} APIResponse{data=service.FeedbackResponse} "Feedback retrieved"
// @Failure 400 {object} APIResponse "Invalid feedback ID"
// @Failure 404 {object} APIResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "feedback retrieved", feedback)
}

// ListFeedback retrieves feedback entries with pagination
// @Summary List feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.FeedbackListResponse} "Feedback retrieved"
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	page, pageSize := paginationParams(c)

	entries, err := h.feedbackService.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "feedback retrieved", entries)
}

// DeleteFeedback removes a feedback entry
// @Summary Delete feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 200 {object} APIResponse "Feedback deleted"
// @Failure 404 {object} APIResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.feedbackService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "feedback deleted", nil)
}
