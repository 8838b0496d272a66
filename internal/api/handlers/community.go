package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler handles HTTP requests for communities
type CommunityHandler struct {
	communityService service.CommunityServiceInterface
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityService service.CommunityServiceInterface) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

// CreateCommunity creates a new community
// @Summary Create a new community
// @Description Create a community under a club with optional leadership slots, social links and sessions. At least one leadership slot must be filled, slot holders must be distinct, and none of them may hold a role in any other community.
// @Tags communities
// @Accept json
// @Produce json
// @Param community body service.CreateCommunityRequest true "Community data"
// @Success 201 {object} APIResponse{data=service.CommunityResponse} "Community created"
// @Failure 400 {object} APIResponse "Invalid request body or leadership slots"
// @Failure 404 {object} APIResponse "Club or user not found"
// @Failure 409 {object} APIResponse "Name taken or executive conflict"
// @Security BearerAuth
// @Router /communities [post]
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	var req service.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	community, err := h.communityService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "community created", community)
}

// GetCommunity retrieves a community by ID
// @Summary Get community by ID
// @Description Get a community with its leadership, members, sessions and social links
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Success 200 {object} APIResponse{data=service.CommunityResponse} "Community retrieved"
// @Failure 400 {object} APIResponse "Invalid community ID"
// @Failure 404 {object} APIResponse "Community not found"
// @Router /communities/{id} [get]
func (h *CommunityHandler) GetCommunity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	community, err := h.communityService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "community retrieved", community)
}

// ListCommunities retrieves communities with pagination
// @Summary List communities
// @Description Get all communities with pagination
// @Tags communities
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.CommunityListResponse} "Communities retrieved"
// @Router /communities [get]
func (h *CommunityHandler) ListCommunities(c *gin.Context) {
	page, pageSize := paginationParams(c)

	communities, err := h.communityService.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "communities retrieved", communities)
}

// SearchCommunity retrieves a community by exact name
// @Summary Search community by name
// @Description Get a community by its exact name, case-insensitive
// @Tags communities
// @Accept json
// @Produce json
// @Param name query string true "Community name"
// @Success 200 {object} APIResponse{data=service.CommunityResponse} "Community retrieved"
// @Failure 400 {object} APIResponse "Missing name parameter"
// @Failure 404 {object} APIResponse "Community not found"
// @Router /communities/search [get]
func (h *CommunityHandler) SearchCommunity(c *gin.Context) {
	community, err := h.communityService.SearchByName(c.Query("name"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "community retrieved", community)
}

// UpdateCommunity applies a partial update to a community
// @Summary Update a community
// @Description Partially update a community. Leadership slots accept a user ID, null to clear, or may be omitted to leave unchanged. Reassignments are checked against the one-role-per-account rule. Social links and sessions are replaced wholesale when supplied.
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Param community body service.UpdateCommunityRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.CommunityResponse} "Community updated"
// @Failure 400 {object} APIResponse "Invalid request body or leadership slots"
// @Failure 404 {object} APIResponse "Community or user not found"
// @Failure 409 {object} APIResponse "Executive conflict"
// @Security BearerAuth
// @Router /communities/{id} [patch]
func (h *CommunityHandler) UpdateCommunity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	community, err := h.communityService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "community updated", community)
}

// JoinCommunity adds a member to a community
// @Summary Join a community
// @Description Add a member by name and email. An email may belong to at most 3 communities and may not join the same community twice.
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Param member body service.JoinCommunityRequest true "Member name and email"
// @Success 200 {object} APIResponse{data=service.CommunityResponse} "Joined community"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 403 {object} APIResponse "Community cap reached"
// @Failure 404 {object} APIResponse "Community not found"
// @Failure 409 {object} APIResponse "Already a member"
// @Router /communities/{id}/join [post]
func (h *CommunityHandler) JoinCommunity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	community, err := h.communityService.Join(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "joined community", community)
}

// GetCommunityMembers lists a community's members
// @Summary List community members
// @Description Get a community's members with pagination
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.MemberListResponse} "Members retrieved"
// @Failure 404 {object} APIResponse "Community not found"
// @Router /communities/{id}/members [get]
func (h *CommunityHandler) GetCommunityMembers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize := paginationParams(c)
	members, err := h.communityService.GetMembers(id, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "members retrieved", members)
}

// RemoveCommunityMember removes one member and refreshes the member count
// @Summary Remove a community member
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Param member_id path string true "Membership ID (UUID)"
// @Success 200 {object} APIResponse "Member removed"
// @Failure 404 {object} APIResponse "Community or membership not found"
// @Security BearerAuth
// @Router /communities/{id}/members/{member_id} [delete]
func (h *CommunityHandler) RemoveCommunityMember(c *gin.Context) {
	communityID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "member_id")
	if !ok {
		return
	}

	if err := h.communityService.RemoveMember(communityID, memberID); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "member removed", nil)
}

// DeleteCommunity removes a community
// @Summary Delete a community
// @Description Delete a community; its memberships, sessions, social links and executive roles are removed with it
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID (UUID)"
// @Success 200 {object} APIResponse "Community deleted"
// @Failure 404 {object} APIResponse "Community not found"
// @Security BearerAuth
// @Router /communities/{id} [delete]
func (h *CommunityHandler) DeleteCommunity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.communityService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "community deleted", nil)
}
