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

type CommentServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCommentRepositoryInterface
	mockEventRepo  *mocks.MockEventRepositoryInterface
	commentService *service.CommentService
	validator      *validator.Validate
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.commentService = service.NewCommentService(suite.mockRepo, suite.mockEventRepo, suite.validator)
}

func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommentServiceTestSuite) TestCreate_Success() {
	eventID := uuid.New()
	authorID := uuid.New()
	commentID := uuid.New()

	suite.mockEventRepo.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel: models.BaseModel{ID: eventID},
	}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Comment) error {
		assert.Equal(suite.T(), eventID, c.EventID)
		assert.Equal(suite.T(), authorID, c.AuthorID)
		assert.Nil(suite.T(), c.ParentID)
		c.ID = commentID
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(commentID).Return(&models.Comment{
		BaseModel: models.BaseModel{ID: commentID},
		EventID:   eventID,
		AuthorID:  authorID,
		Content:   "Great session!",
		Author:    models.User{BaseModel: models.BaseModel{ID: authorID}, Username: "amina.k"},
	}, nil)

	resp, err := suite.commentService.Create(eventID, authorID, &service.CreateCommentRequest{Content: "Great session!"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Great session!", resp.Content)
	assert.Equal(suite.T(), "amina.k", resp.Author.Username)
}

func (suite *CommentServiceTestSuite) TestCreate_EventMissing() {
	eventID := uuid.New()

	suite.mockEventRepo.EXPECT().GetByID(eventID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.commentService.Create(eventID, uuid.New(), &service.CreateCommentRequest{Content: "hi"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEventNotFound)
}

func (suite *CommentServiceTestSuite) TestCreateReply_InheritsParentEvent() {
	eventID := uuid.New()
	parentID := uuid.New()
	authorID := uuid.New()
	replyID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(parentID).Return(&models.Comment{
		BaseModel: models.BaseModel{ID: parentID},
		EventID:   eventID,
	}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Comment) error {
		assert.Equal(suite.T(), eventID, c.EventID)
		assert.Equal(suite.T(), parentID, *c.ParentID)
		c.ID = replyID
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(replyID).Return(&models.Comment{
		BaseModel: models.BaseModel{ID: replyID},
		EventID:   eventID,
		AuthorID:  authorID,
		ParentID:  &parentID,
		Content:   "Agreed!",
	}, nil)

	resp, err := suite.commentService.CreateReply(parentID, authorID, &service.CreateCommentRequest{Content: "Agreed!"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), eventID, resp.EventID)
	assert.Equal(suite.T(), parentID, *resp.ParentID)
}

func (suite *CommentServiceTestSuite) TestCreateReply_ParentMissing() {
	parentID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(parentID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.commentService.CreateReply(parentID, uuid.New(), &service.CreateCommentRequest{Content: "hi"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommentNotFound)
}

func (suite *CommentServiceTestSuite) TestListByEvent_NestsReplies() {
	eventID := uuid.New()
	parentID := uuid.New()

	suite.mockEventRepo.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel: models.BaseModel{ID: eventID},
	}, nil)
	suite.mockRepo.EXPECT().GetByEvent(eventID, 20, 0).Return([]models.Comment{
		{
			BaseModel: models.BaseModel{ID: parentID},
			EventID:   eventID,
			Content:   "Who is coming?",
			Replies: []models.Comment{
				{BaseModel: models.BaseModel{ID: uuid.New()}, EventID: eventID, ParentID: &parentID, Content: "Me!"},
			},
		},
	}, int64(1), nil)

	resp, err := suite.commentService.ListByEvent(eventID, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Comments[0].Replies, 1)
	assert.Equal(suite.T(), "Me!", resp.Comments[0].Replies[0].Content)
}

func (suite *CommentServiceTestSuite) TestUpdate_NotTheAuthor() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Comment{
		BaseModel: models.BaseModel{ID: id},
		AuthorID:  uuid.New(),
	}, nil)

	resp, err := suite.commentService.Update(id, uuid.New(), &service.UpdateCommentRequest{Content: "edited"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotResourceOwner)
}

func (suite *CommentServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	authorID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Comment{
		BaseModel: models.BaseModel{ID: id},
		AuthorID:  authorID,
	}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	assert.NoError(suite.T(), suite.commentService.Delete(id, authorID))
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
