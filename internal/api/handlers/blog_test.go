package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-portal-backend/internal/api/handlers"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/mocks"
	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBlogServiceInterface
	router      *gin.Engine
	userID      uuid.UUID
}

func (suite *BlogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBlogServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewBlogHandler(suite.mockService)
	suite.router = gin.New()
	// Stand-in for the JWT middleware: every request runs as suite.userID
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	blogs := suite.router.Group("/api/v1/blogs")
	{
		blogs.GET("", handler.ListBlogs)
		blogs.POST("", handler.CreateBlog)
		blogs.PATCH("/:id", handler.UpdateBlog)
		blogs.DELETE("/:id", handler.DeleteBlog)
	}
}

func (suite *BlogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BlogHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BlogHandlerTestSuite) TestCreateBlog_Success() {
	blogID := uuid.New()

	suite.mockService.EXPECT().Create(suite.userID, gomock.Any()).Return(&service.BlogResponse{
		ID:       blogID,
		AuthorID: suite.userID,
		Title:    "Hackathon recap",
	}, nil)

	w := suite.doJSON(http.MethodPost, "/api/v1/blogs", service.CreateBlogRequest{
		Title:   "Hackathon recap",
		Content: "It went well.",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "blog created")
}

func (suite *BlogHandlerTestSuite) TestListBlogs_PassesSearch() {
	suite.mockService.EXPECT().GetByAuthor(suite.userID, "golang", 1, 20).
		Return(&service.BlogListResponse{Blogs: []service.BlogResponse{}, Total: 0}, nil)

	w := suite.doJSON(http.MethodGet, "/api/v1/blogs?search=golang", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogHandlerTestSuite) TestUpdateBlog_NotTheAuthor() {
	blogID := uuid.New()

	suite.mockService.EXPECT().Update(blogID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrNotResourceOwner)

	newTitle := "Edited"
	w := suite.doJSON(http.MethodPatch, "/api/v1/blogs/"+blogID.String(), service.UpdateBlogRequest{
		Title: &newTitle,
	})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "not authorized")
}

func (suite *BlogHandlerTestSuite) TestUpdateBlog_NotFound() {
	blogID := uuid.New()

	suite.mockService.EXPECT().Update(blogID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrBlogNotFound)

	newTitle := "Edited"
	w := suite.doJSON(http.MethodPatch, "/api/v1/blogs/"+blogID.String(), service.UpdateBlogRequest{
		Title: &newTitle,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BlogHandlerTestSuite) TestDeleteBlog_Success() {
	blogID := uuid.New()

	suite.mockService.EXPECT().Delete(blogID, suite.userID).Return(nil)

	w := suite.doJSON(http.MethodDelete, "/api/v1/blogs/"+blogID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogHandlerTestSuite) TestListBlogs_MissingIdentity() {
	handler := handlers.NewBlogHandler(suite.mockService)
	bare := gin.New()
	bare.GET("/api/v1/blogs", handler.ListBlogs)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil)
	w := httptest.NewRecorder()
	bare.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "authentication required")
}

func TestBlogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BlogHandlerTestSuite))
}
