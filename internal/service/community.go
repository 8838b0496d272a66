package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityService coordinates community creation, leadership reassignment
// and join requests against the executive role registry and the membership
// cap.
type CommunityService struct {
	repo           repository.CommunityRepositoryInterface
	clubRepo       repository.ClubRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	execRepo       repository.ExecutiveRoleRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewCommunityService creates a new community service
func NewCommunityService(
	repo repository.CommunityRepositoryInterface,
	clubRepo repository.ClubRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	execRepo repository.ExecutiveRoleRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *CommunityService {
	return &CommunityService{
		repo:           repo,
		clubRepo:       clubRepo,
		userRepo:       userRepo,
		execRepo:       execRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// NullableUUID distinguishes "field absent" from "field set to null" in
// partial updates, so a leadership slot can be explicitly cleared.
type NullableUUID struct {
	Defined bool
	Value   *uuid.UUID
}

// UnmarshalJSON records that the field was present in the payload
func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Defined = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// SocialMediaInput is one social link supplied on create/update
type SocialMediaInput struct {
	Platform string `json:"platform" validate:"required,max=50"`
	URL      string `json:"url" validate:"required,url"`
}

// SessionInput is one recurring session supplied on create/update
type SessionInput struct {
	Day         string             `json:"day" validate:"required"`
	StartTime   string             `json:"start_time" validate:"required"`
	EndTime     string             `json:"end_time" validate:"required"`
	MeetingType models.MeetingType `json:"meeting_type" validate:"required,oneof=physical online hybrid"`
	Location    string             `json:"location"`
}

// CreateCommunityRequest represents the request to create a community
type CreateCommunityRequest struct {
	ClubID       uuid.UUID          `json:"club_id" validate:"required"`
	Name         string             `json:"name" validate:"required,max=200"`
	Description  string             `json:"description"`
	Email        string             `json:"email" validate:"omitempty,email"`
	PhoneNumber  string             `json:"phone_number" validate:"max=20"`
	FoundingDate *time.Time         `json:"founding_date"`
	IsRecruiting *bool              `json:"is_recruiting"`
	TechStack    json.RawMessage    `json:"tech_stack" swaggertype:"object"`
	LeadID       *uuid.UUID         `json:"community_lead"`
	CoLeadID     *uuid.UUID         `json:"co_lead"`
	SecretaryID  *uuid.UUID         `json:"secretary"`
	SocialMedia  []SocialMediaInput `json:"social_media" validate:"dive"`
	Sessions     []SessionInput     `json:"sessions" validate:"dive"`
}

// UpdateCommunityRequest represents a partial community update. Leadership
// slots use NullableUUID: absent means unchanged, null means cleared.
type UpdateCommunityRequest struct {
	Name         *string             `json:"name" validate:"omitempty,max=200"`
	Description  *string             `json:"description"`
	Email        *string             `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string             `json:"phone_number" validate:"omitempty,max=20"`
	FoundingDate *time.Time          `json:"founding_date"`
	IsRecruiting *bool               `json:"is_recruiting"`
	TechStack    json.RawMessage     `json:"tech_stack" swaggertype:"object"`
	LeadID       NullableUUID        `json:"community_lead"`
	CoLeadID     NullableUUID        `json:"co_lead"`
	SecretaryID  NullableUUID        `json:"secretary"`
	SocialMedia  *[]SocialMediaInput `json:"social_media" validate:"omitempty,dive"`
	Sessions     *[]SessionInput     `json:"sessions" validate:"omitempty,dive"`
}

// JoinCommunityRequest represents a join request
type JoinCommunityRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// UserSummary is the abbreviated account projection used in community responses
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// MemberResponse is one membership row in community responses
type MemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// SocialMediaResponse is one social link in community responses
type SocialMediaResponse struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
}

// SessionResponse is one recurring session in community responses
type SessionResponse struct {
	ID          uuid.UUID          `json:"id"`
	Day         string             `json:"day"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	MeetingType models.MeetingType `json:"meeting_type"`
	Location    string             `json:"location"`
}

// CommunityResponse represents the response for community operations
type CommunityResponse struct {
	ID           uuid.UUID             `json:"id"`
	ClubID       uuid.UUID             `json:"club_id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Email        string                `json:"email"`
	PhoneNumber  string                `json:"phone_number"`
	FoundingDate *time.Time            `json:"founding_date"`
	IsRecruiting bool                  `json:"is_recruiting"`
	TechStack    json.RawMessage       `json:"tech_stack" swaggertype:"object"`
	TotalMembers int64                 `json:"total_members"`
	LeadID       *uuid.UUID            `json:"community_lead"`
	CoLeadID     *uuid.UUID            `json:"co_lead"`
	SecretaryID  *uuid.UUID            `json:"secretary"`
	Lead         *UserSummary          `json:"community_lead_details,omitempty"`
	CoLead       *UserSummary          `json:"co_lead_details,omitempty"`
	Secretary    *UserSummary          `json:"secretary_details,omitempty"`
	SocialMedia  []SocialMediaResponse `json:"social_media"`
	Sessions     []SessionResponse     `json:"sessions"`
	Members      []MemberResponse      `json:"members"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CommunityListResponse represents a paginated list of communities
type CommunityListResponse struct {
	Communities []CommunityResponse `json:"communities"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// MemberListResponse represents a paginated list of community members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a community together with its leadership role rows,
// social links and sessions, all-or-nothing.
func (s *CommunityService) Create(req *CreateCommunityRequest) (*CommunityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.clubRepo.GetByID(req.ClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to verify club: %w", err)
	}

	existing, err := s.repo.GetByName(req.ClubID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing community: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCommunityExists
	}

	slots := map[models.ExecutivePosition]*uuid.UUID{
		models.PositionLead:      req.LeadID,
		models.PositionCoLead:    req.CoLeadID,
		models.PositionSecretary: req.SecretaryID,
	}
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	// Every named account must be role-free anywhere in the system before
	// any row is written.
	var roles []models.ExecutiveRole
	for _, position := range models.Positions {
		userID := slots[position]
		if userID == nil {
			continue
		}
		user, err := s.lookupUser(*userID)
		if err != nil {
			return nil, err
		}
		taken, err := s.execRepo.ExistsForUser(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check executive registry: %w", err)
		}
		if taken {
			return nil, apperrors.NewExecutiveConflictError(user.Email)
		}
		roles = append(roles, models.ExecutiveRole{
			UserID:     user.ID,
			Position:   position,
			JoinedDate: time.Now(),
		})
	}

	isRecruiting := true
	if req.IsRecruiting != nil {
		isRecruiting = *req.IsRecruiting
	}

	community := &models.Community{
		ClubID:       req.ClubID,
		Name:         req.Name,
		Description:  req.Description,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		FoundingDate: req.FoundingDate,
		IsRecruiting: isRecruiting,
		TechStack:    req.TechStack,
		LeadID:       req.LeadID,
		CoLeadID:     req.CoLeadID,
		SecretaryID:  req.SecretaryID,
		SocialMedia:  toSocialModels(req.SocialMedia),
		Sessions:     toSessionModels(req.Sessions),
	}

	if err := s.repo.CreateWithRoles(community, roles); err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	return s.detailsResponse(community.ID)
}

// Update applies a partial update. Changed leadership slots are checked
// against the registry excluding this community, then reassigned via
// delete-then-create. Social links and sessions are replaced wholesale when
// supplied. The member count is recomputed unconditionally.
func (s *CommunityService) Update(id uuid.UUID, req *UpdateCommunityRequest) (*CommunityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	community, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	if req.Name != nil {
		community.Name = *req.Name
	}
	if req.Description != nil {
		community.Description = *req.Description
	}
	if req.Email != nil {
		community.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		community.PhoneNumber = *req.PhoneNumber
	}
	if req.FoundingDate != nil {
		community.FoundingDate = req.FoundingDate
	}
	if req.IsRecruiting != nil {
		community.IsRecruiting = *req.IsRecruiting
	}
	if req.TechStack != nil {
		community.TechStack = req.TechStack
	}

	var removeRoles, addRoles []models.ExecutiveRole
	slotUpdates := []struct {
		position models.ExecutivePosition
		input    NullableUUID
		field    **uuid.UUID
	}{
		{models.PositionLead, req.LeadID, &community.LeadID},
		{models.PositionCoLead, req.CoLeadID, &community.CoLeadID},
		{models.PositionSecretary, req.SecretaryID, &community.SecretaryID},
	}

	for _, slot := range slotUpdates {
		if !slot.input.Defined {
			continue
		}
		oldID := community.SlotFor(slot.position)
		newID := slot.input.Value
		if uuidEqual(oldID, newID) {
			continue
		}

		if newID != nil {
			user, err := s.lookupUser(*newID)
			if err != nil {
				return nil, err
			}
			// Excluding this community's rows lets a user move between
			// slots of the same community without conflicting with
			// themselves.
			taken, err := s.execRepo.ExistsForUserExcludingCommunity(user.ID, community.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check executive registry: %w", err)
			}
			if taken {
				return nil, apperrors.NewExecutiveConflictError(user.Email)
			}
			addRoles = append(addRoles, models.ExecutiveRole{
				UserID:      *newID,
				CommunityID: community.ID,
				Position:    slot.position,
				JoinedDate:  time.Now(),
			})
		}
		if oldID != nil {
			removeRoles = append(removeRoles, models.ExecutiveRole{
				UserID:      *oldID,
				CommunityID: community.ID,
				Position:    slot.position,
			})
		}
		*slot.field = newID
	}

	if err := validateSlots(map[models.ExecutivePosition]*uuid.UUID{
		models.PositionLead:      community.LeadID,
		models.PositionCoLead:    community.CoLeadID,
		models.PositionSecretary: community.SecretaryID,
	}); err != nil {
		return nil, err
	}

	var socials []models.SocialMediaLink
	replaceSocials := req.SocialMedia != nil
	if replaceSocials {
		socials = toSocialModels(*req.SocialMedia)
	}

	var sessions []models.CommunitySession
	replaceSessions := req.Sessions != nil
	if replaceSessions {
		sessions = toSessionModels(*req.Sessions)
	}

	err = s.repo.UpdateWithRoles(community, removeRoles, addRoles, socials, replaceSocials, sessions, replaceSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to update community: %w", err)
	}

	return s.detailsResponse(community.ID)
}

// Join adds a member to a community, enforcing the per-email community cap
// and the duplicate-join rule inside the repository's transaction.
func (s *CommunityService) Join(communityID uuid.UUID, req *JoinCommunityRequest) (*CommunityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	membership := &models.Membership{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.Join(communityID, membership, models.MembershipCap); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		if apperrors.IsCapExceeded(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to join community: %w", err)
	}

	return s.detailsResponse(communityID)
}

// GetByID retrieves a community with full details
func (s *CommunityService) GetByID(id uuid.UUID) (*CommunityResponse, error) {
	return s.detailsResponse(id)
}

// GetAll retrieves communities with pagination
func (s *CommunityService) GetAll(page, pageSize int) (*CommunityListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	communities, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get communities: %w", err)
	}

	responses := make([]CommunityResponse, len(communities))
	for i := range communities {
		responses[i] = *toCommunityResponse(&communities[i])
	}

	return &CommunityListResponse{
		Communities: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// SearchByName retrieves a community by exact name, case-insensitive
func (s *CommunityService) SearchByName(name string) (*CommunityResponse, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	community, err := s.repo.SearchByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to search community: %w", err)
	}

	return toCommunityResponse(community), nil
}

// GetMembers lists a community's members with pagination
func (s *CommunityService) GetMembers(communityID uuid.UUID, page, pageSize int) (*MemberListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.repo.GetByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	offset := (page - 1) * pageSize
	members, total, err := s.membershipRepo.GetByCommunity(communityID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = MemberResponse{ID: m.ID, Name: m.Name, Email: m.Email, JoinedAt: m.JoinedAt}
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// RemoveMember deletes one membership row and refreshes the denormalized
// member count.
func (s *CommunityService) RemoveMember(communityID, memberID uuid.UUID) error {
	if _, err := s.repo.GetByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommunityNotFound
		}
		return fmt.Errorf("failed to get community: %w", err)
	}

	if err := s.membershipRepo.Delete(communityID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if _, err := s.repo.RecomputeTotalMembers(communityID); err != nil {
		return fmt.Errorf("failed to recompute member count: %w", err)
	}
	return nil
}

// Delete removes a community; memberships, sessions, social links and role
// rows cascade.
func (s *CommunityService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommunityNotFound
		}
		return fmt.Errorf("failed to get community: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete community: %w", err)
	}
	return nil
}

func (s *CommunityService) detailsResponse(id uuid.UUID) (*CommunityResponse, error) {
	community, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return toCommunityResponse(community), nil
}

func (s *CommunityService) lookupUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// validateSlots enforces "at least one slot filled" and "all filled slots
// pairwise distinct".
func validateSlots(slots map[models.ExecutivePosition]*uuid.UUID) error {
	seen := make(map[uuid.UUID]bool)
	filled := 0
	for _, userID := range slots {
		if userID == nil {
			continue
		}
		filled++
		if seen[*userID] {
			return apperrors.ErrDuplicateExecutives
		}
		seen[*userID] = true
	}
	if filled == 0 {
		return apperrors.ErrNoExecutiveAssigned
	}
	return nil
}

func uuidEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func toSocialModels(inputs []SocialMediaInput) []models.SocialMediaLink {
	out := make([]models.SocialMediaLink, len(inputs))
	for i, in := range inputs {
		out[i] = models.SocialMediaLink{Platform: in.Platform, URL: in.URL}
	}
	return out
}

func toSessionModels(inputs []SessionInput) []models.CommunitySession {
	out := make([]models.CommunitySession, len(inputs))
	for i, in := range inputs {
		out[i] = models.CommunitySession{
			Day:         in.Day,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			MeetingType: in.MeetingType,
			Location:    in.Location,
		}
	}
	return out
}

func toUserSummary(user *models.User) *UserSummary {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}
	return &UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toCommunityResponse(c *models.Community) *CommunityResponse {
	resp := &CommunityResponse{
		ID:           c.ID,
		ClubID:       c.ClubID,
		Name:         c.Name,
		Description:  c.Description,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		FoundingDate: c.FoundingDate,
		IsRecruiting: c.IsRecruiting,
		TechStack:    c.TechStack,
		TotalMembers: c.TotalMembers,
		LeadID:       c.LeadID,
		CoLeadID:     c.CoLeadID,
		SecretaryID:  c.SecretaryID,
		Lead:         toUserSummary(c.Lead),
		CoLead:       toUserSummary(c.CoLead),
		Secretary:    toUserSummary(c.Secretary),
		SocialMedia:  make([]SocialMediaResponse, len(c.SocialMedia)),
		Sessions:     make([]SessionResponse, len(c.Sessions)),
		Members:      make([]MemberResponse, len(c.Members)),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for i, sm := range c.SocialMedia {
		resp.SocialMedia[i] = SocialMediaResponse{ID: sm.ID, Platform: sm.Platform, URL: sm.URL}
	}
	for i, sess := range c.Sessions {
		resp.Sessions[i] = SessionResponse{
			ID:          sess.ID,
			Day:         sess.Day,
			StartTime:   sess.StartTime,
			EndTime:     sess.EndTime,
			MeetingType: sess.MeetingType,
			Location:    sess.Location,
		}
	}
	for i, m := range c.Members {
		resp.Members[i] = MemberResponse{ID: m.ID, Name: m.Name, Email: m.Email, JoinedAt: m.JoinedAt}
	}
	return resp
}
