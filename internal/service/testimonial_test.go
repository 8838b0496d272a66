package service_test

import (
	"errors"
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

type TestimonialServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockTestimonialRepositoryInterface
	testimonialService *service.TestimonialService
	validator          *validator.Validate
}

func (suite *TestimonialServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTestimonialRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.testimonialService = service.NewTestimonialService(suite.mockRepo, suite.validator)
}

func (suite *TestimonialServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestimonialServiceTestSuite) TestCreate_StartsUnapproved() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Testimonial) error {
		// Submissions always enter the moderation queue unapproved
		assert.False(suite.T(), t.Approved)
		t.ID = uuid.New()
		return nil
	})

	resp, err := suite.testimonialService.Create(&service.CreateTestimonialRequest{
		AuthorName: "Sam Rivera",
		Role:       "Alumni",
		Content:    "The club shaped my career.",
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Approved)
}

func (suite *TestimonialServiceTestSuite) TestCreate_ValidationFails() {
	resp, err := suite.testimonialService.Create(&service.CreateTestimonialRequest{Role: "Alumni"})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *TestimonialServiceTestSuite) TestGetAll_ApprovedOnly() {
	suite.mockRepo.EXPECT().GetAll(true, 20, 0).Return([]models.Testimonial{
		{BaseModel: models.BaseModel{ID: uuid.New()}, AuthorName: "Sam Rivera", Approved: true},
	}, int64(1), nil)

	resp, err := suite.testimonialService.GetAll(true, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.True(suite.T(), resp.Testimonials[0].Approved)
}

func (suite *TestimonialServiceTestSuite) TestUpdate_Approve() {
	id := uuid.New()
	existing := &models.Testimonial{
		BaseModel:  models.BaseModel{ID: id},
		AuthorName: "Sam Rivera",
		Content:    "The club shaped my career.",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(t *models.Testimonial) error {
		assert.True(suite.T(), t.Approved)
		return nil
	})

	approved := true
	resp, err := suite.testimonialService.Update(id, &service.UpdateTestimonialRequest{Approved: &approved})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Approved)
}

func (suite *TestimonialServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.testimonialService.Update(id, &service.UpdateTestimonialRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTestimonialNotFound)
}

func (suite *TestimonialServiceTestSuite) TestDelete_RepoError() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Testimonial{}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(errors.New("db failed"))

	err := suite.testimonialService.Delete(id)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to delete testimonial")
}

func TestTestimonialServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestimonialServiceTestSuite))
}
