package service_test

import (
	"errors"
	"testing"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/mocks"
	"club-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PasscodeServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockPasscodeRepositoryInterface
	mockSender      *mocks.MockSender
	passcodeService *service.PasscodeService
}

func (suite *PasscodeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPasscodeRepositoryInterface(suite.ctrl)
	suite.mockSender = mocks.NewMockSender(suite.ctrl)
	suite.passcodeService = service.NewPasscodeService(suite.mockRepo, suite.mockSender)
}

func (suite *PasscodeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PasscodeServiceTestSuite) testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "member1",
		Email:     "member1@university.edu",
		IsActive:  true,
	}
}

func (suite *PasscodeServiceTestSuite) TestIssue_Success() {
	user := suite.testUser()

	suite.mockRepo.EXPECT().InvalidateUnverified(user.ID, gomock.Any()).Return(nil)

	var stored *models.Passcode
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Passcode) error {
		stored = p
		return nil
	})
	suite.mockSender.EXPECT().Send(user.Email, "Your verification code", gomock.Any()).Return(nil)

	passcode, err := suite.passcodeService.Issue(user)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), passcode)
	assert.Equal(suite.T(), stored, passcode)
	assert.Equal(suite.T(), user.ID, passcode.UserID)
	assert.Len(suite.T(), passcode.Code, 6)
	assert.False(suite.T(), passcode.Verified)
	assert.WithinDuration(suite.T(), time.Now().Add(models.PasscodeTTL), passcode.ExpiresAt, 5*time.Second)
}

func (suite *PasscodeServiceTestSuite) TestIssue_DeliveryFailure_ReturnsPasscode() {
	user := suite.testUser()

	suite.mockRepo.EXPECT().InvalidateUnverified(user.ID, gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockSender.EXPECT().Send(user.Email, gomock.Any(), gomock.Any()).Return(errors.New("smtp connection refused"))

	passcode, err := suite.passcodeService.Issue(user)

	// The stored passcode survives the failed send
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsDelivery(err))
	assert.NotNil(suite.T(), passcode)
	assert.Len(suite.T(), passcode.Code, 6)
}

func (suite *PasscodeServiceTestSuite) TestIssue_InvalidateFails() {
	user := suite.testUser()

	suite.mockRepo.EXPECT().InvalidateUnverified(user.ID, gomock.Any()).Return(errors.New("db failed"))

	passcode, err := suite.passcodeService.Issue(user)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), passcode)
	assert.Contains(suite.T(), err.Error(), "failed to invalidate previous passcodes")
}

func (suite *PasscodeServiceTestSuite) TestVerify_Success() {
	user := suite.testUser()
	passcode := &models.Passcode{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Code:      "482913",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	suite.mockRepo.EXPECT().GetLatestUnverified(user.ID).Return(passcode, nil)
	suite.mockRepo.EXPECT().Update(passcode).Return(nil)

	verified, err := suite.passcodeService.Verify(user, "482913")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), verified.Verified)
}

func (suite *PasscodeServiceTestSuite) TestVerify_NoPasscode() {
	user := suite.testUser()

	suite.mockRepo.EXPECT().GetLatestUnverified(user.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.passcodeService.Verify(user, "482913")

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasscodeNotFound)
}

func (suite *PasscodeServiceTestSuite) TestVerify_Expired() {
	user := suite.testUser()
	passcode := &models.Passcode{
		UserID:    user.ID,
		Code:      "482913",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	suite.mockRepo.EXPECT().GetLatestUnverified(user.ID).Return(passcode, nil)

	_, err := suite.passcodeService.Verify(user, "482913")

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasscodeExpired)
}

func (suite *PasscodeServiceTestSuite) TestVerify_Mismatch() {
	user := suite.testUser()
	passcode := &models.Passcode{
		UserID:    user.ID,
		Code:      "482913",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	suite.mockRepo.EXPECT().GetLatestUnverified(user.ID).Return(passcode, nil)

	_, err := suite.passcodeService.Verify(user, "000000")

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasscodeMismatch)
}

func (suite *PasscodeServiceTestSuite) TestConsumeVerified_Success() {
	user := suite.testUser()
	passcode := &models.Passcode{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Code:      "482913",
		ExpiresAt: time.Now().Add(5 * time.Minute),
		Verified:  true,
	}

	suite.mockRepo.EXPECT().GetLatestVerified(user.ID).Return(passcode, nil)
	suite.mockRepo.EXPECT().Delete(passcode.ID).Return(nil)

	err := suite.passcodeService.ConsumeVerified(user)

	assert.NoError(suite.T(), err)
}

func (suite *PasscodeServiceTestSuite) TestConsumeVerified_None() {
	user := suite.testUser()

	suite.mockRepo.EXPECT().GetLatestVerified(user.ID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.passcodeService.ConsumeVerified(user)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoVerifiedPasscode)
}

func (suite *PasscodeServiceTestSuite) TestConsumeVerified_ExpiredVerified() {
	user := suite.testUser()
	passcode := &models.Passcode{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
		Verified:  true,
	}

	suite.mockRepo.EXPECT().GetLatestVerified(user.ID).Return(passcode, nil)

	err := suite.passcodeService.ConsumeVerified(user)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoVerifiedPasscode)
}

func TestPasscodeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PasscodeServiceTestSuite))
}
