package routes_test

import (
	"testing"

	"club-portal-backend/internal/api/routes"
	"club-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Route registration only wires handlers, so a nil DB is fine here.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := routes.SetupRoutes(nil, &config.Config{
		JWTSecret:    "test-secret",
		ContactEmail: "contact@club.example.com",
	})

	table := make(map[string]bool)
	for _, r := range router.Routes() {
		table[r.Method+" "+r.Path] = true
	}
	return table
}

func TestSetupRoutes_RegistersExpectedEndpoints(t *testing.T) {
	table := registeredRoutes(t)

	expected := []string{
		"GET /health",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",

		"GET /api/v1/communities",
		"PUT /api/v1/communities/:id",
		"PATCH /api/v1/communities/:id",
		"DELETE /api/v1/communities/:id/members/:member_id",
		"POST /api/v1/communities/:id/join",

		"GET /api/v1/events/:id/comments",
		"POST /api/v1/events/:id/comments",
		"GET /api/v1/comments/:id",
		"GET /api/v1/comments/:id/replies",
		"POST /api/v1/comments/:id/replies",
		"PATCH /api/v1/comments/:id",
		"DELETE /api/v1/comments/:id",

		"GET /api/v1/blogs",
		"POST /api/v1/blogs",
		"PATCH /api/v1/blogs/:id",
		"DELETE /api/v1/blogs/:id",

		"POST /api/v1/newsletter/subscribe",
		"POST /api/v1/newsletter/send",
		"POST /api/v1/contact",
	}

	for _, route := range expected {
		assert.True(t, table[route], "missing route %s", route)
	}
}

func TestSetupRoutes_UpdateAcceptsPutAndPatch(t *testing.T) {
	table := registeredRoutes(t)

	assert.True(t, table["PUT /api/v1/communities/:id"])
	assert.True(t, table["PATCH /api/v1/communities/:id"])
}
