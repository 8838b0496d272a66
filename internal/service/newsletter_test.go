package service_test

import (
	"fmt"
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

type NewsletterServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockSubscriberRepositoryInterface
	mockSender        *mocks.MockSender
	newsletterService *service.NewsletterService
	validator         *validator.Validate
}

func (suite *NewsletterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSubscriberRepositoryInterface(suite.ctrl)
	suite.mockSender = mocks.NewMockSender(suite.ctrl)
	suite.validator = validator.New()
	suite.newsletterService = service.NewNewsletterService(
		suite.mockRepo, suite.mockSender, "contact@club.example.com", suite.validator,
	)
}

func (suite *NewsletterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NewsletterServiceTestSuite) TestSubscribe_Success() {
	suite.mockRepo.EXPECT().GetByEmail("new@uni.edu").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Subscriber) error {
		assert.Equal(suite.T(), "new@uni.edu", s.Email)
		s.ID = uuid.New()
		return nil
	})

	resp, err := suite.newsletterService.Subscribe(&service.SubscribeRequest{Email: "new@uni.edu"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new@uni.edu", resp.Email)
}

func (suite *NewsletterServiceTestSuite) TestSubscribe_Duplicate() {
	suite.mockRepo.EXPECT().GetByEmail("taken@uni.edu").Return(&models.Subscriber{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "taken@uni.edu",
	}, nil)

	resp, err := suite.newsletterService.Subscribe(&service.SubscribeRequest{Email: "taken@uni.edu"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *NewsletterServiceTestSuite) TestSubscribe_InvalidEmail() {
	resp, err := suite.newsletterService.Subscribe(&service.SubscribeRequest{Email: "not-an-email"})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *NewsletterServiceTestSuite) TestSend_AllDelivered() {
	suite.mockRepo.EXPECT().GetAllEmails().Return([]string{"a@uni.edu", "b@uni.edu"}, nil)
	suite.mockSender.EXPECT().Send("a@uni.edu", "March digest", "Hello everyone").Return(nil)
	suite.mockSender.EXPECT().Send("b@uni.edu", "March digest", "Hello everyone").Return(nil)

	resp, err := suite.newsletterService.Send(&service.SendNewsletterRequest{
		Subject: "March digest",
		Message: "Hello everyone",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Recipients)
	assert.Equal(suite.T(), 0, resp.Failed)
}

func (suite *NewsletterServiceTestSuite) TestSend_PartialFailure() {
	suite.mockRepo.EXPECT().GetAllEmails().Return([]string{"a@uni.edu", "b@uni.edu"}, nil)
	suite.mockSender.EXPECT().Send("a@uni.edu", gomock.Any(), gomock.Any()).Return(fmt.Errorf("mailbox full"))
	suite.mockSender.EXPECT().Send("b@uni.edu", gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.newsletterService.Send(&service.SendNewsletterRequest{
		Subject: "March digest",
		Message: "Hello everyone",
	})

	assert.True(suite.T(), apperrors.IsDelivery(err))
	assert.Equal(suite.T(), 1, resp.Recipients)
	assert.Equal(suite.T(), 1, resp.Failed)
}

func (suite *NewsletterServiceTestSuite) TestSend_NoSubscribers() {
	suite.mockRepo.EXPECT().GetAllEmails().Return([]string{}, nil)

	resp, err := suite.newsletterService.Send(&service.SendNewsletterRequest{
		Subject: "March digest",
		Message: "Hello everyone",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Recipients)
}

func (suite *NewsletterServiceTestSuite) TestContact_ForwardsToContactAddress() {
	suite.mockSender.EXPECT().
		Send("contact@club.example.com", "Contact message from Lina", gomock.Any()).
		DoAndReturn(func(to, subject, body string) error {
			assert.Contains(suite.T(), body, "lina@uni.edu")
			assert.Contains(suite.T(), body, "Can we book the hall?")
			return nil
		})

	err := suite.newsletterService.Contact(&service.ContactRequest{
		Name:    "Lina",
		Email:   "lina@uni.edu",
		Message: "Can we book the hall?",
	})

	assert.NoError(suite.T(), err)
}

func (suite *NewsletterServiceTestSuite) TestContact_DeliveryFailure() {
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("smtp unreachable"))

	err := suite.newsletterService.Contact(&service.ContactRequest{
		Name:    "Lina",
		Email:   "lina@uni.edu",
		Message: "Hello",
	})

	assert.True(suite.T(), apperrors.IsDelivery(err))
}

func TestNewsletterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsletterServiceTestSuite))
}
