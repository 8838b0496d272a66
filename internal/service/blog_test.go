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

type BlogServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockBlogRepositoryInterface
	blogService *service.BlogService
	validator   *validator.Validate
}

func (suite *BlogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBlogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.blogService = service.NewBlogService(suite.mockRepo, suite.validator)
}

func (suite *BlogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BlogServiceTestSuite) TestCreate_OwnedByCaller() {
	authorID := uuid.New()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Blog) error {
		assert.Equal(suite.T(), authorID, b.AuthorID)
		b.ID = uuid.New()
		return nil
	})

	resp, err := suite.blogService.Create(authorID, &service.CreateBlogRequest{
		Title:   "Getting started with Go",
		Content: "A short introduction for new members.",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), authorID, resp.AuthorID)
	assert.Equal(suite.T(), "Getting started with Go", resp.Title)
}

func (suite *BlogServiceTestSuite) TestCreate_ValidationFails() {
	resp, err := suite.blogService.Create(uuid.New(), &service.CreateBlogRequest{Title: "No content"})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *BlogServiceTestSuite) TestGetByAuthor_PassesSearch() {
	authorID := uuid.New()

	suite.mockRepo.EXPECT().GetByAuthor(authorID, "innovation", 20, 0).Return([]models.Blog{
		{BaseModel: models.BaseModel{ID: uuid.New()}, AuthorID: authorID, Title: "Innovation week"},
	}, int64(1), nil)

	resp, err := suite.blogService.GetByAuthor(authorID, "innovation", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), "Innovation week", resp.Blogs[0].Title)
}

func (suite *BlogServiceTestSuite) TestUpdate_Success() {
	authorID := uuid.New()
	id := uuid.New()
	existing := &models.Blog{
		BaseModel: models.BaseModel{ID: id},
		AuthorID:  authorID,
		Title:     "Old title",
		Content:   "Body",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(b *models.Blog) error {
		assert.Equal(suite.T(), "New title", b.Title)
		return nil
	})

	newTitle := "New title"
	resp, err := suite.blogService.Update(id, authorID, &service.UpdateBlogRequest{Title: &newTitle})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New title", resp.Title)
}

func (suite *BlogServiceTestSuite) TestUpdate_NotTheAuthor() {
	id := uuid.New()
	existing := &models.Blog{BaseModel: models.BaseModel{ID: id}, AuthorID: uuid.New()}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	newTitle := "Hijacked"
	resp, err := suite.blogService.Update(id, uuid.New(), &service.UpdateBlogRequest{Title: &newTitle})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *BlogServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.blogService.Update(id, uuid.New(), &service.UpdateBlogRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBlogNotFound)
}

func (suite *BlogServiceTestSuite) TestDelete_Success() {
	authorID := uuid.New()
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Blog{
		BaseModel: models.BaseModel{ID: id},
		AuthorID:  authorID,
	}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	assert.NoError(suite.T(), suite.blogService.Delete(id, authorID))
}

func (suite *BlogServiceTestSuite) TestDelete_NotTheAuthor() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Blog{
		BaseModel: models.BaseModel{ID: id},
		AuthorID:  uuid.New(),
	}, nil)

	err := suite.blogService.Delete(id, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotResourceOwner)
}

func TestBlogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceTestSuite))
}
