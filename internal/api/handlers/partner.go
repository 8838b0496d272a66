package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartnerHandler handles HTTP requests for partners
type PartnerHandler struct {
	partnerService service.PartnerServiceInterface
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerService service.PartnerServiceInterface) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// CreatePartner creates a new partner
// @Summary Create a new partner
// @Description Create a partner organization. Partner names are unique.
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body service.CreatePartnerRequest true "Partner data"
// @Success 201 {object} APIResponse{data=service.PartnerResponse} "Partner created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 409 {object} APIResponse "Partner name taken"
// @Security BearerAuth
// @Router /partners [post]
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var req service.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	partner, err := h.partnerService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "partner created", partner)
}

// GetPartner retrieves a partner by ID
// @Summary Get partner by ID
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID (UUID)"
// @Success 200 {object} APIResponse{data=service.PartnerResponse} "Partner retrieved"
// @Failure 400 {object} APIResponse "Invalid partner ID"
// @Failure 404 {object} APIResponse "Partner not found"
// @Router /partners/{id} [get]
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	partner, err := h.partnerService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "partner retrieved", partner)
}

// ListPartners retrieves partners with pagination
// @Summary List partners
// @Tags partners
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.PartnerListResponse} "Partners retrieved"
// @Router /partners [get]
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	page, pageSize := paginationParams(c)

	partners, err := h.partnerService.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "partners retrieved", partners)
}

// UpdatePartner applies a partial update to a partner
// @Summary Update a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID (UUID)"
// @Param partner body service.UpdatePartnerRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.PartnerResponse} "Partner updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Partner not found"
// @Failure 409 {object} APIResponse "Partner name taken"
// @Security BearerAuth
// @Router /partners/{id} [patch]
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	partner, err := h.partnerService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "partner updated", partner)
}

// DeletePartner removes a partner
// @Summary Delete a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID (UUID)"
// @Success 200 {object} APIResponse "Partner deleted"
// @Failure 404 {object} APIResponse "Partner not found"
// @Security BearerAuth
// @Router /partners/{id} [delete]
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.partnerService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "partner deleted", nil)
}
