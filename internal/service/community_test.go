package service_test

import (
	"testing"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/mocks"
	"club-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CommunityServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockCommunityRepositoryInterface
	mockClubRepo       *mocks.MockClubRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockExecRepo       *mocks.MockExecutiveRoleRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	communityService   *service.CommunityService
	validator          *validator.Validate
}

func (suite *CommunityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCommunityRepositoryInterface(suite.ctrl)
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockExecRepo = mocks.NewMockExecutiveRoleRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.communityService = service.NewCommunityService(
		suite.mockRepo,
		suite.mockClubRepo,
		suite.mockUserRepo,
		suite.mockExecRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)
}

func (suite *CommunityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testAccount() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Username:  "lead_" + id.String()[:8],
		Email:     "lead_" + id.String()[:8] + "@university.edu",
		IsActive:  true,
	}
}

func (suite *CommunityServiceTestSuite) TestCreate_Success() {
	clubID := uuid.New()
	lead := testAccount()

	req := &service.CreateCommunityRequest{
		ClubID: clubID,
		Name:   "Web Development",
		LeadID: &lead.ID,
	}

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(&models.Club{BaseModel: models.BaseModel{ID: clubID}}, nil)
	suite.mockRepo.EXPECT().GetByName(clubID, "Web Development").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(lead.ID).Return(lead, nil)
	suite.mockExecRepo.EXPECT().ExistsForUser(lead.ID).Return(false, nil)

	communityID := uuid.New()
	suite.mockRepo.EXPECT().CreateWithRoles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Community, roles []models.ExecutiveRole) error {
			c.ID = communityID
			assert.Len(suite.T(), roles, 1)
			assert.Equal(suite.T(), models.PositionLead, roles[0].Position)
			assert.Equal(suite.T(), lead.ID, roles[0].UserID)
			return nil
		})
	suite.mockRepo.EXPECT().GetWithDetails(communityID).Return(&models.Community{
		BaseModel: models.BaseModel{ID: communityID},
		ClubID:    clubID,
		Name:      "Web Development",
		LeadID:    &lead.ID,
		Lead:      lead,
	}, nil)

	resp, err := suite.communityService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), communityID, resp.ID)
	assert.Equal(suite.T(), lead.ID, *resp.LeadID)
	assert.Equal(suite.T(), lead.Username, resp.Lead.Username)
}

func (suite *CommunityServiceTestSuite) TestCreate_ClubMissing() {
	clubID := uuid.New()
	lead := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.communityService.Create(&service.CreateCommunityRequest{
		ClubID: clubID,
		Name:   "Web Development",
		LeadID: &lead,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
}

func (suite *CommunityServiceTestSuite) TestCreate_NameTakenInClub() {
	clubID := uuid.New()
	lead := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(&models.Club{}, nil)
	suite.mockRepo.EXPECT().GetByName(clubID, "Web Development").
		Return(&models.Community{Name: "Web Development"}, nil)

	resp, err := suite.communityService.Create(&service.CreateCommunityRequest{
		ClubID: clubID,
		Name:   "Web Development",
		LeadID: &lead,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityExists)
}

func (suite *CommunityServiceTestSuite) TestCreate_NoExecutiveAssigned() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(&models.Club{}, nil)
	suite.mockRepo.EXPECT().GetByName(clubID, "Web Development").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.communityService.Create(&service.CreateCommunityRequest{
		ClubID: clubID,
		Name:   "Web Development",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoExecutiveAssigned)
}

func (suite *CommunityServiceTestSuite) TestCreate_SameUserInTwoSlots() {
	clubID := uuid.New()
	userID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(&models.Club{}, nil)
	suite.mockRepo.EXPECT().GetByName(clubID, "Web Development").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.communityService.Create(&service.CreateCommunityRequest{
		ClubID:   clubID,
		Name:     "Web Development",
		LeadID:   &userID,
		CoLeadID: &userID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateExecutives)
}

func (suite *CommunityServiceTestSuite) TestCreate_ExecutiveConflict() {
	clubID := uuid.New()
	lead := testAccount()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(&models.Club{}, nil)
	suite.mockRepo.EXPECT().GetByName(clubID, "Web Development").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(lead.ID).Return(lead, nil)
	// The account already leads some other community
	suite.mockExecRepo.EXPECT().ExistsForUser(lead.ID).Return(true, nil)

	resp, err := suite.communityService.Create(&service.CreateCommunityRequest{
		ClubID: clubID,
		Name:   "Web Development",
		LeadID: &lead.ID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsExecutiveConflict(err))
	assert.Contains(suite.T(), err.Error(), lead.Email)
}

func (suite *CommunityServiceTestSuite) TestUpdate_ReassignLead() {
	oldLead := uuid.New()
	newLead := testAccount()
	communityID := uuid.New()

	existing := &models.Community{
		BaseModel: models.BaseModel{ID: communityID},
		Name:      "Web Development",
		LeadID:    &oldLead,
	}

	suite.mockRepo.EXPECT().GetByID(communityID).Return(existing, nil)
	suite.mockUserRepo.EXPECT().GetByID(newLead.ID).Return(newLead, nil)
	suite.mockExecRepo.EXPECT().ExistsForUserExcludingCommunity(newLead.ID, communityID).Return(false, nil)
	suite.mockRepo.EXPECT().UpdateWithRoles(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), false, gomock.Nil(), false).
		DoAndReturn(func(c *models.Community, removeRoles, addRoles []models.ExecutiveRole, _ []models.SocialMediaLink, _ bool, _ []models.CommunitySession, _ bool) error {
			assert.Len(suite.T(), removeRoles, 1)
			assert.Equal(suite.T(), oldLead, removeRoles[0].UserID)
			assert.Len(suite.T(), addRoles, 1)
			assert.Equal(suite.T(), newLead.ID, addRoles[0].UserID)
			assert.Equal(suite.T(), models.PositionLead, addRoles[0].Position)
			return nil
		})
	suite.mockRepo.EXPECT().GetWithDetails(communityID).Return(existing, nil)

	req := &service.UpdateCommunityRequest{
		LeadID: service.NullableUUID{Defined: true, Value: &newLead.ID},
	}
	resp, err := suite.communityService.Update(communityID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *CommunityServiceTestSuite) TestUpdate_UnchangedSlotSkipsRegistryCheck() {
	lead := uuid.New()
	communityID := uuid.New()

	existing := &models.Community{
		BaseModel: models.BaseModel{ID: communityID},
		Name:      "Web Development",
		LeadID:    &lead,
	}

	suite.mockRepo.EXPECT().GetByID(communityID).Return(existing, nil)
	// No user lookup and no registry check expected: the slot value is unchanged
	suite.mockRepo.EXPECT().UpdateWithRoles(gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil(), false, gomock.Nil(), false).Return(nil)
	suite.mockRepo.EXPECT().GetWithDetails(communityID).Return(existing, nil)

	newName := "Web and Mobile Development"
	req := &service.UpdateCommunityRequest{
		Name:   &newName,
		LeadID: service.NullableUUID{Defined: true, Value: &lead},
	}
	resp, err := suite.communityService.Update(communityID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *CommunityServiceTestSuite) TestUpdate_ClearingLastSlotRejected() {
	lead := uuid.New()
	communityID := uuid.New()

	existing := &models.Community{
		BaseModel: models.BaseModel{ID: communityID},
		Name:      "Web Development",
		LeadID:    &lead,
	}

	suite.mockRepo.EXPECT().GetByID(communityID).Return(existing, nil)

	req := &service.UpdateCommunityRequest{
		LeadID: service.NullableUUID{Defined: true, Value: nil},
	}
	resp, err := suite.communityService.Update(communityID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoExecutiveAssigned)
}

func (suite *CommunityServiceTestSuite) TestUpdate_NotFound() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.communityService.Update(communityID, &service.UpdateCommunityRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityNotFound)
}

func (suite *CommunityServiceTestSuite) TestJoin_Success() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().Join(communityID, gomock.Any(), models.MembershipCap).
		DoAndReturn(func(_ uuid.UUID, m *models.Membership, _ int) error {
			assert.Equal(suite.T(), "Jordan Soto", m.Name)
			assert.Equal(suite.T(), "jordan@university.edu", m.Email)
			return nil
		})
	suite.mockRepo.EXPECT().GetWithDetails(communityID).Return(&models.Community{
		BaseModel:    models.BaseModel{ID: communityID},
		TotalMembers: 1,
	}, nil)

	resp, err := suite.communityService.Join(communityID, &service.JoinCommunityRequest{
		Name:  "Jordan Soto",
		Email: "jordan@university.edu",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.TotalMembers)
}

func (suite *CommunityServiceTestSuite) TestJoin_CapExceeded() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().Join(communityID, gomock.Any(), models.MembershipCap).
		Return(apperrors.NewCapExceededError(models.MembershipCap))

	resp, err := suite.communityService.Join(communityID, &service.JoinCommunityRequest{
		Name:  "Jordan Soto",
		Email: "jordan@university.edu",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsCapExceeded(err))
}

func (suite *CommunityServiceTestSuite) TestJoin_DuplicateMembership() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().Join(communityID, gomock.Any(), models.MembershipCap).
		Return(apperrors.ErrDuplicateMembership)

	resp, err := suite.communityService.Join(communityID, &service.JoinCommunityRequest{
		Name:  "Jordan Soto",
		Email: "jordan@university.edu",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateMembership)
}

func (suite *CommunityServiceTestSuite) TestJoin_CommunityMissing() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().Join(communityID, gomock.Any(), models.MembershipCap).
		Return(gorm.ErrRecordNotFound)

	resp, err := suite.communityService.Join(communityID, &service.JoinCommunityRequest{
		Name:  "Jordan Soto",
		Email: "jordan@university.edu",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityNotFound)
}

func (suite *CommunityServiceTestSuite) TestSearchByName_EmptyName() {
	resp, err := suite.communityService.SearchByName("")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CommunityServiceTestSuite) TestSearchByName_NotFound() {
	suite.mockRepo.EXPECT().SearchByName("no such community").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.communityService.SearchByName("no such community")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityNotFound)
}

func (suite *CommunityServiceTestSuite) TestGetMembers_Success() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(&models.Community{
		BaseModel: models.BaseModel{ID: communityID},
	}, nil)
	suite.mockMembershipRepo.EXPECT().GetByCommunity(communityID, 20, 0).Return([]models.Membership{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Jordan Soto", Email: "jordan@university.edu"},
	}, int64(1), nil)

	resp, err := suite.communityService.GetMembers(communityID, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Members, 1)
	assert.Equal(suite.T(), "Jordan Soto", resp.Members[0].Name)
}

func (suite *CommunityServiceTestSuite) TestRemoveMember_Success() {
	communityID := uuid.New()
	memberID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(&models.Community{
		BaseModel: models.BaseModel{ID: communityID},
	}, nil)
	suite.mockMembershipRepo.EXPECT().Delete(communityID, memberID).Return(nil)
	suite.mockRepo.EXPECT().RecomputeTotalMembers(communityID).Return(int64(4), nil)

	err := suite.communityService.RemoveMember(communityID, memberID)

	assert.NoError(suite.T(), err)
}

func (suite *CommunityServiceTestSuite) TestRemoveMember_CommunityMissing() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.communityService.RemoveMember(communityID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityNotFound)
}

func (suite *CommunityServiceTestSuite) TestRemoveMember_MembershipMissing() {
	communityID := uuid.New()
	memberID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(&models.Community{
		BaseModel: models.BaseModel{ID: communityID},
	}, nil)
	suite.mockMembershipRepo.EXPECT().Delete(communityID, memberID).Return(gorm.ErrRecordNotFound)

	err := suite.communityService.RemoveMember(communityID, memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *CommunityServiceTestSuite) TestDelete_NotFound() {
	communityID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(communityID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.communityService.Delete(communityID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCommunityNotFound)
}

func TestCommunityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityServiceTestSuite))
}
