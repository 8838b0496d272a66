package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler handles HTTP requests for testimonials
type TestimonialHandler struct {
	testimonialService service.TestimonialServiceInterface
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(testimonialService service.TestimonialServiceInterface) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

// CreateTestimonial creates a new testimonial
// @Summary Submit a testimonial
// @Description Create a testimonial; it stays hidden until approved
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body service.CreateTestimonialRequest true "Testimonial data"
// @Success 201 {object} APIResponse{data=service.TestimonialResponse} "Testimonial submitted"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Router /testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req service.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	testimonial, err := h.testimonialService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "testimonial submitted", testimonial)
}

// GetTestimonial retrieves a testimonial by ID
// @Summary Get testimonial by ID
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID (UUID)"
// @Success 200 {object} APIResponse{data=service.TestimonialResponse} "Testimonial retrieved"
// @Failure 400 {object} APIResponse "Invalid testimonial ID"
// @Failure 404 {object} APIResponse "Testimonial not found"
// @Router /testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	testimonial, err := h.testimonialService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "testimonial retrieved", testimonial)
}

// ListTestimonials retrieves testimonials with pagination
// @Summary List testimonials
// @Description List testimonials. Pass approved_only=true to restrict to approved entries, which is what the public site shows.
// @Tags testimonials
// @Accept json
// @Produce json
// @Param approved_only query bool false "Only approved testimonials" default(false)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.TestimonialListResponse} "Testimonials retrieved"
// @Router /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	page, pageSize := paginationParams(c)
	approvedOnly := c.Query("approved_only") == "true"

	testimonials, err := h.testimonialService.GetAll(approvedOnly, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "testimonials retrieved", testimonials)
}

// UpdateTestimonial applies a partial update to a testimonial
// @Summary Update a testimonial
// @Description Partially update a testimonial, including its approval flag
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID (UUID)"
// @Param testimonial body service.UpdateTestimonialRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.TestimonialResponse} "Testimonial updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Testimonial not found"
// @Security BearerAuth
// @Router /testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	testimonial, err := h.testimonialService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "testimonial updated", testimonial)
}

// DeleteTestimonial removes a testimonial
// @Summary Delete a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID (UUID)"
// @Success 200 {object} APIResponse "Testimonial deleted"
// @Failure 404 {object} APIResponse "Testimonial not found"
// @Security BearerAuth
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.testimonialService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "testimonial deleted", nil)
}
