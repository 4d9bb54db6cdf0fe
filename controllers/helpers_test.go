package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fastfood-ui/middleware"
	"fastfood-ui/models"
	"fastfood-ui/repositories"
	"fastfood-ui/routes"
	"fastfood-ui/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// newTestRouter wires the full route table against a fake remote API.
func newTestRouter(t *testing.T, apiURL string) (*gin.Engine, *repositories.SessionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := repositories.NewSessionRepository(time.Hour)
	client := services.NewClient(apiURL, zerolog.Nop())

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(router, sessions, client, zerolog.Nop())
	return router, sessions
}

// signIn opens a session directly in the store and returns the cookie to
// attach to requests.
func signIn(sessions *repositories.SessionRepository, admin bool) (*models.Session, *http.Cookie) {
	session := sessions.Create("test-token", admin)
	return session, &http.Cookie{Name: middleware.SessionCookie, Value: session.ID}
}

func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
