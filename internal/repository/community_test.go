//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CommunityRepositoryTestSuite tests the CommunityRepository
type CommunityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CommunityRepository
	clubRepo      *ClubRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CommunityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCommunityRepository(suite.baseTestSuite.DB)
	suite.clubRepo = NewClubRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CommunityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CommunityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CommunityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CommunityRepositoryTestSuite) createClub() *models.Club {
	club := suite.factories.Club.Create()
	suite.NoError(suite.clubRepo.Create(club))
	return club
}

func (suite *CommunityRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

// TestCreateWithRoles tests creating a community with a lead assignment
func (suite *CommunityRepositoryTestSuite) TestCreateWithRoles() {
	club := suite.createClub()
	lead := suite.createUser()

	community := suite.factories.Community.WithClub(club.ID)
	community.LeadID = &lead.ID

	roles := []models.ExecutiveRole{
		{UserID: lead.ID, Position: models.PositionLead, JoinedDate: time.Now()},
	}
	err := suite.repo.CreateWithRoles(community, roles)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, community.ID)
	suite.Equal(int64(0), community.TotalMembers)

	var roleCount int64
	suite.baseTestSuite.DB.Model(&models.ExecutiveRole{}).
		Where("community_id = ?", community.ID).Count(&roleCount)
	suite.Equal(int64(1), roleCount)
}

// TestCreateWithRolesDuplicateUser tests that the unique index on user_id
// rejects a second role row for the same account
func (suite *CommunityRepositoryTestSuite) TestCreateWithRolesDuplicateUser() {
	club := suite.createClub()
	lead := suite.createUser()

	first := suite.factories.Community.WithClub(club.ID)
	first.LeadID = &lead.ID
	err := suite.repo.CreateWithRoles(first, []models.ExecutiveRole{
		{UserID: lead.ID, Position: models.PositionLead, JoinedDate: time.Now()},
	})
	suite.NoError(err)

	second := suite.factories.Community.WithClub(club.ID)
	second.CoLeadID = &lead.ID
	err = suite.repo.CreateWithRoles(second, []models.ExecutiveRole{
		{UserID: lead.ID, Position: models.PositionCoLead, JoinedDate: time.Now()},
	})
	suite.Error(err)

	// The transaction rolled back, so the second community must not exist
	_, err = suite.repo.GetByID(second.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestJoin tests joining a community and the member count recompute
func (suite *CommunityRepositoryTestSuite) TestJoin() {
	club := suite.createClub()
	community := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(community, nil))

	membership := suite.factories.Membership.Create()
	err := suite.repo.Join(community.ID, membership, models.MembershipCap)
	suite.NoError(err)

	refreshed, err := suite.repo.GetByID(community.ID)
	suite.NoError(err)
	suite.Equal(int64(1), refreshed.TotalMembers)
}

// TestJoinDuplicate tests that joining the same community twice fails
func (suite *CommunityRepositoryTestSuite) TestJoinDuplicate() {
	club := suite.createClub()
	community := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(community, nil))

	err := suite.repo.Join(community.ID, suite.factories.Membership.WithEmail("dup@test.edu"), models.MembershipCap)
	suite.NoError(err)

	err = suite.repo.Join(community.ID, suite.factories.Membership.WithEmail("dup@test.edu"), models.MembershipCap)
	suite.ErrorIs(err, apperrors.ErrDuplicateMembership)

	refreshed, _ := suite.repo.GetByID(community.ID)
	suite.Equal(int64(1), refreshed.TotalMembers)
}

// TestJoinCapExceeded tests the per-email community cap
func (suite *CommunityRepositoryTestSuite) TestJoinCapExceeded() {
	club := suite.createClub()
	email := "busy@test.edu"

	var last *models.Community
	for i := 0; i < models.MembershipCap; i++ {
		community := suite.factories.Community.WithClub(club.ID)
		suite.NoError(suite.repo.CreateWithRoles(community, nil))
		suite.NoError(suite.repo.Join(community.ID, suite.factories.Membership.WithEmail(email), models.MembershipCap))
		last = community
	}

	extra := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(extra, nil))
	err := suite.repo.Join(extra.ID, suite.factories.Membership.WithEmail(email), models.MembershipCap)
	suite.True(apperrors.IsCapExceeded(err))

	// Existing memberships are untouched
	refreshed, _ := suite.repo.GetByID(last.ID)
	suite.Equal(int64(1), refreshed.TotalMembers)
}

// TestJoinMissingCommunity tests joining a community that does not exist
func (suite *CommunityRepositoryTestSuite) TestJoinMissingCommunity() {
	err := suite.repo.Join(uuid.New(), suite.factories.Membership.Create(), models.MembershipCap)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateWithRolesReassignment tests the delete-then-create slot move
func (suite *CommunityRepositoryTestSuite) TestUpdateWithRolesReassignment() {
	club := suite.createClub()
	oldLead := suite.createUser()
	newLead := suite.createUser()

	community := suite.factories.Community.WithClub(club.ID)
	community.LeadID = &oldLead.ID
	suite.NoError(suite.repo.CreateWithRoles(community, []models.ExecutiveRole{
		{UserID: oldLead.ID, Position: models.PositionLead, JoinedDate: time.Now()},
	}))

	community.LeadID = &newLead.ID
	err := suite.repo.UpdateWithRoles(community,
		[]models.ExecutiveRole{{UserID: oldLead.ID, CommunityID: community.ID, Position: models.PositionLead}},
		[]models.ExecutiveRole{{UserID: newLead.ID, CommunityID: community.ID, Position: models.PositionLead, JoinedDate: time.Now()}},
		nil, false, nil, false,
	)
	suite.NoError(err)

	var roles []models.ExecutiveRole
	suite.baseTestSuite.DB.Where("community_id = ?", community.ID).Find(&roles)
	suite.Len(roles, 1)
	suite.Equal(newLead.ID, roles[0].UserID)
	suite.Equal(models.PositionLead, roles[0].Position)
}

// TestUpdateWithRolesReplaceSocials tests wholesale social link replacement
func (suite *CommunityRepositoryTestSuite) TestUpdateWithRolesReplaceSocials() {
	club := suite.createClub()
	community := suite.factories.Community.WithClub(club.ID)
	community.SocialMedia = []models.SocialMediaLink{{Platform: "github", URL: "https://github.com/old"}}
	suite.NoError(suite.repo.CreateWithRoles(community, nil))

	err := suite.repo.UpdateWithRoles(community, nil, nil,
		[]models.SocialMediaLink{
			{Platform: "github", URL: "https://github.com/new"},
			{Platform: "instagram", URL: "https://instagram.com/new"},
		}, true,
		nil, false,
	)
	suite.NoError(err)

	detailed, err := suite.repo.GetWithDetails(community.ID)
	suite.NoError(err)
	suite.Len(detailed.SocialMedia, 2)
}

// TestSearchByNameCaseInsensitive tests the case-insensitive exact match
func (suite *CommunityRepositoryTestSuite) TestSearchByNameCaseInsensitive() {
	club := suite.createClub()
	community := suite.factories.Community.WithClub(club.ID)
	community.Name = "Web Development"
	suite.NoError(suite.repo.CreateWithRoles(community, nil))

	found, err := suite.repo.SearchByName("web development")
	suite.NoError(err)
	suite.Equal(community.ID, found.ID)

	_, err = suite.repo.SearchByName("no such community")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMembershipDeleteScopedToCommunity tests that a membership can only be
// removed through its own community, and that the member count is recomputed
func (suite *CommunityRepositoryTestSuite) TestMembershipDeleteScopedToCommunity() {
	club := suite.createClub()
	communityA := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(communityA, nil))
	communityB := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(communityB, nil))

	membership := suite.factories.Membership.Create()
	suite.NoError(suite.repo.Join(communityA.ID, membership, models.MembershipCap))

	membershipRepo := NewMembershipRepository(suite.baseTestSuite.DB)

	// Removing through the wrong community must not touch the row
	err := membershipRepo.Delete(communityB.ID, membership.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	err = membershipRepo.Delete(communityA.ID, membership.ID)
	suite.NoError(err)

	total, err := suite.repo.RecomputeTotalMembers(communityA.ID)
	suite.NoError(err)
	suite.Equal(int64(0), total)

	refreshed, err := suite.repo.GetByID(communityA.ID)
	suite.NoError(err)
	suite.Equal(int64(0), refreshed.TotalMembers)
}

// TestDeleteCascades tests that deleting a community removes its children
func (suite *CommunityRepositoryTestSuite) TestDeleteCascades() {
	club := suite.createClub()
	community := suite.factories.Community.WithClub(club.ID)
	suite.NoError(suite.repo.CreateWithRoles(community, nil))
	suite.NoError(suite.repo.Join(community.ID, suite.factories.Membership.Create(), models.MembershipCap))

	suite.NoError(suite.repo.Delete(community.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.Membership{}).
		Where("community_id = ?", community.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestCommunityRepositoryTestSuite runs the test suite
func TestCommunityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityRepositoryTestSuite))
}
