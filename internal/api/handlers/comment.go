package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for event comments
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListEventComments lists an event's top-level comments with their replies
// @Summary List event comments
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.CommentListResponse} "Comments retrieved"
// @Failure 404 {object} APIResponse "Event not found"
// @Router /events/{id}/comments [get]
func (h *CommentHandler) ListEventComments(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize := paginationParams(c)
	comments, err := h.commentService.ListByEvent(eventID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "comments retrieved", comments)
}

// CreateComment creates a top-level comment on an event
// @Summary Comment on an event
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} APIResponse{data=service.CommentResponse} "Comment created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.Create(eventID, authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "comment created", comment)
}

// GetComment retrieves a single comment with its replies
// @Summary Get comment by ID
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} APIResponse{data=service.CommentResponse} "Comment retrieved"
// @Failure 404 {object} APIResponse "Comment not found"
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "comment retrieved", comment)
}

// ListReplies lists a comment's replies
// @Summary List comment replies
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.CommentListResponse} "Replies retrieved"
// @Failure 404 {object} APIResponse "Comment not found"
// @Router /comments/{id}/replies [get]
func (h *CommentHandler) ListReplies(c *gin.Context) {
	parentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize := paginationParams(c)
	replies, err := h.commentService.GetReplies(parentID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "replies retrieved", replies)
}

// CreateReply creates a reply under an existing comment
// @Summary Reply to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Parent comment ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Reply data"
// @Success 201 {object} APIResponse{data=service.CommentResponse} "Reply created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id}/replies [post]
func (h *CommentHandler) CreateReply(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	parentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.commentService.CreateReply(parentID, authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "reply created", reply)
}

// UpdateComment edits one of the caller's comments
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.UpdateCommentRequest true "New content"
// @Success 200 {object} APIResponse{data=service.CommentResponse} "Comment updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 403 {object} APIResponse "Not the author"
// @Failure 404 {object} APIResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.Update(id, authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "comment updated", comment)
}

// DeleteComment removes one of the caller's comments and its replies
// @Summary Delete a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} APIResponse "Comment deleted"
// @Failure 403 {object} APIResponse "Not the author"
// @Failure 404 {object} APIResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(id, authorID); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "comment deleted", nil)
}
