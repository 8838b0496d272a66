package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles HTTP requests for blog posts. Every route is scoped to
// the authenticated account.
type BlogHandler struct {
	blogService service.BlogServiceInterface
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// CreateBlog creates a blog post owned by the caller
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body service.CreateBlogRequest true "Blog data"
// @Success 201 {object} APIResponse{data=service.BlogResponse} "Blog created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Security BearerAuth
// @Router /blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogService.Create(authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "blog created", blog)
}

// ListBlogs lists the caller's blog posts
// @Summary List your blog posts
// @Description List blog posts owned by the authenticated account. An optional search filters on title or content.
// @Tags blogs
// @Accept json
// @Produce json
// @Param search query string false "Filter on title or content"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.BlogListResponse} "Blogs retrieved"
// @Security BearerAuth
// @Router /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := paginationParams(c)
	blogs, err := h.blogService.GetByAuthor(authorID, c.Query("search"), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "blogs retrieved", blogs)
}

// UpdateBlog applies a partial update to one of the caller's posts
// @Summary Update a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID (UUID)"
// @Param blog body service.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.BlogResponse} "Blog updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 403 {object} APIResponse "Not the author"
// @Failure 404 {object} APIResponse "Blog not found"
// @Security BearerAuth
// @Router /blogs/{id} [patch]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogService.Update(id, authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "blog updated", blog)
}

// DeleteBlog removes one of the caller's posts
// @Summary Delete a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID (UUID)"
// @Success 200 {object} APIResponse "Blog deleted"
// @Failure 403 {object} APIResponse "Not the author"
// @Failure 404 {object} APIResponse "Blog not found"
// @Security BearerAuth
// @Router /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.Delete(id, authorID); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "blog deleted", nil)
}
