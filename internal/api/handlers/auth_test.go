package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-portal-backend/internal/api/handlers"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/mocks"
	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAuthServiceInterface
	router      *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuthServiceInterface(suite.ctrl)

	handler := handlers.NewAuthHandler(suite.mockService)
	suite.router = gin.New()
	auth := suite.router.Group("/api/v1/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/verify-otp", handler.VerifyOTP)
		auth.POST("/password-reset", handler.RequestPasswordReset)
		auth.POST("/reset-password", handler.ResetPassword)
	}
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(suite.T(), err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := service.RegisterRequest{
		Username: "newmember",
		Email:    "newmember@university.edu",
		Password: "sup3rs3cret",
	}
	suite.mockService.EXPECT().Register(gomock.Any()).Return(&service.UserResponse{
		Username: req.Username,
		Email:    req.Email,
	}, nil)

	w := suite.postJSON("/api/v1/auth/register", req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp handlers.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "success", resp.Status)
	assert.Contains(suite.T(), resp.Message, "verification code sent")
}

func (suite *AuthHandlerTestSuite) TestRegister_UsernameTaken() {
	suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUsernameExists)

	w := suite.postJSON("/api/v1/auth/register", service.RegisterRequest{
		Username: "taken",
		Email:    "taken@university.edu",
		Password: "sup3rs3cret",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_DeliveryFailureReportsBoth() {
	user := &service.UserResponse{Username: "newmember", Email: "newmember@university.edu"}
	suite.mockService.EXPECT().Register(gomock.Any()).
		Return(user, apperrors.NewDeliveryError(errors.New("smtp down")))

	w := suite.postJSON("/api/v1/auth/register", service.RegisterRequest{
		Username: "newmember",
		Email:    "newmember@university.edu",
		Password: "sup3rs3cret",
	})

	// The account exists even though the email failed, so the body carries it
	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)

	var resp handlers.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "error", resp.Status)
	assert.NotNil(suite.T(), resp.Data)
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(&service.LoginResponse{
		Token: "signed-token",
		User:  service.UserResponse{Username: "member1"},
	}, nil)

	w := suite.postJSON("/api/v1/auth/login", service.LoginRequest{Username: "member1", Password: "sup3rs3cret"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "signed-token")
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	w := suite.postJSON("/api/v1/auth/login", service.LoginRequest{Username: "member1", Password: "wrong"})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_InactiveAccount() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrAccountNotActive)

	w := suite.postJSON("/api/v1/auth/login", service.LoginRequest{Username: "member1", Password: "sup3rs3cret"})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *AuthHandlerTestSuite) TestVerifyOTP_Registration() {
	suite.mockService.EXPECT().VerifyOTP(gomock.Any()).
		Return(&service.VerifyOTPResponse{Purpose: service.PurposeRegistration}, nil)

	w := suite.postJSON("/api/v1/auth/verify-otp", service.VerifyOTPRequest{
		Email: "newmember@university.edu",
		Code:  "482913",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "registration")
}

func (suite *AuthHandlerTestSuite) TestVerifyOTP_Expired() {
	suite.mockService.EXPECT().VerifyOTP(gomock.Any()).Return(nil, apperrors.ErrPasscodeExpired)

	w := suite.postJSON("/api/v1/auth/verify-otp", service.VerifyOTPRequest{
		Email: "newmember@university.edu",
		Code:  "482913",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestVerifyOTP_UnknownAccount() {
	suite.mockService.EXPECT().VerifyOTP(gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

	w := suite.postJSON("/api/v1/auth/verify-otp", service.VerifyOTPRequest{
		Email: "ghost@university.edu",
		Code:  "482913",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRequestPasswordReset_Success() {
	suite.mockService.EXPECT().RequestPasswordReset(gomock.Any()).Return(nil)

	w := suite.postJSON("/api/v1/auth/password-reset", service.PasswordResetRequest{
		Email: "member1@university.edu",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRequestPasswordReset_DeliveryFailure() {
	suite.mockService.EXPECT().RequestPasswordReset(gomock.Any()).
		Return(apperrors.NewDeliveryError(errors.New("smtp down")))

	w := suite.postJSON("/api/v1/auth/password-reset", service.PasswordResetRequest{
		Email: "member1@university.edu",
	})

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *AuthHandlerTestSuite) TestResetPassword_Success() {
	suite.mockService.EXPECT().ResetPassword(gomock.Any()).Return(nil)

	w := suite.postJSON("/api/v1/auth/reset-password", service.ResetPasswordRequest{
		Email:       "member1@university.edu",
		NewPassword: "brandnewpass",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestResetPassword_NoVerifiedPasscode() {
	suite.mockService.EXPECT().ResetPassword(gomock.Any()).Return(apperrors.ErrNoVerifiedPasscode)

	w := suite.postJSON("/api/v1/auth/reset-password", service.ResetPasswordRequest{
		Email:       "member1@university.edu",
		NewPassword: "brandnewpass",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
