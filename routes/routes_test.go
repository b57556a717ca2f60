package routes

import (
	"net/http"
	"testing"

	"mentorhub/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// registeredRoutes builds the full engine with an empty handler bundle and
// indexes the route table by "METHOD path". Handlers are never invoked.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{})

	routes := make(map[string]bool)
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestRegisterRoutesSurface(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		http.MethodPost + " /api/auth/register/student",
		http.MethodPost + " /api/auth/register/mentor",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/auth/me",
		http.MethodGet + " /api/students/:id",
		http.MethodGet + " /api/students/me",
		http.MethodGet + " /api/mentors/:id/availability",
		http.MethodGet + " /api/mentors/:id/availability/preview",
	}
	for _, want := range expected {
		assert.True(t, routes[want], "route %s is not registered", want)
	}
}

func TestAvailabilityReplaceAcceptsBothVerbs(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["POST /api/mentors/:id/availability"])
	assert.True(t, routes["PUT /api/mentors/:id/availability"])
}
