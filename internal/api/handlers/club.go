package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubHandler handles HTTP requests for clubs
type ClubHandler struct {
	clubService service.ClubServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService service.ClubServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// CreateClub creates a new club
// @Summary Create a new club
// @Description Create a club. Club names are unique.
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body service.CreateClubRequest true "Club data"
// @Success 201 {object} APIResponse{data=service.ClubResponse} "Club created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 409 {object} APIResponse "Club name taken"
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req service.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	club, err := h.clubService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "club created", club)
}

// GetClub retrieves a club by ID
// @Summary Get club by ID
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} APIResponse{data=service.ClubResponse} "Club retrieved"
// @Failure 400 {object} APIResponse "Invalid club ID"
// @Failure 404 {object} APIResponse "Club not found"
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	club, err := h.clubService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "club retrieved", club)
}

// ListClubs retrieves clubs with pagination
// @Summary List clubs
// @Tags clubs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.ClubListResponse} "Clubs retrieved"
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	page, pageSize := paginationParams(c)

	clubs, err := h.clubService.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "clubs retrieved", clubs)
}

// UpdateClub applies a partial update to a club
// @Summary Update a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param club body service.UpdateClubRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.ClubResponse} "Club updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Club not found"
// @Failure 409 {object} APIResponse "Club name taken"
// @Security BearerAuth
// @Router /clubs/{id} [patch]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	club, err := h.clubService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "club updated", club)
}

// DeleteClub removes a club
// @Summary Delete a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} APIResponse "Club deleted"
// @Failure 404 {object} APIResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clubService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "club deleted", nil)
}
