package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorhub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(role string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		c.Set(ContextUserRoleKey, role)
	}, guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		status  int
	}{
		{name: "matching role passes", role: models.RoleMentor, allowed: []string{models.RoleMentor}, status: http.StatusOK},
		{name: "one of several roles passes", role: models.RoleAdmin, allowed: []string{models.RoleMentor, models.RoleAdmin}, status: http.StatusOK},
		{name: "wrong role is rejected", role: models.RoleStudent, allowed: []string{models.RoleAdmin}, status: http.StatusForbidden},
		{name: "missing role is rejected", role: "", allowed: []string{models.RoleAdmin}, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := roleTestRouter(tt.role, RequireRoles(tt.allowed...))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("prefers first forwarded hop", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		assert.Equal(t, "203.0.113.7", getClientIP(c))
	})

	t.Run("falls back to remote address", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = "192.0.2.5:4321"

		assert.Equal(t, "192.0.2.5", getClientIP(c))
	})
}
