package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRendersNewestFirst(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/orders", r.URL.Path)
		w.Write([]byte(`{"orders": [
			{"order-id": 11, "customer": "alice", "status": "complete",
			 "items": [{"item": "Rice", "quantity": 1, "cost": 5000}], "total-cost": 5000},
			{"order-id": 12, "customer": "alice", "status": "complete",
			 "items": [{"item": "Chips", "quantity": 2, "cost": 6000}], "total-cost": 6000}
		]}`))
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/history", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// the API's last order renders first
	second := strings.Index(body, "Order #2")
	first := strings.Index(body, "Order #1")
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, first)
	assert.Less(t, second, first)
	assert.Contains(t, body, "Order Total: 6000")
}

func TestHistoryPluralizesItemNames(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders": [
			{"order-id": 1, "customer": "alice", "status": "complete",
			 "items": [
				{"item": "Rice", "quantity": 2, "cost": 10000},
				{"item": "Burger", "quantity": 1, "cost": 8000}
			 ], "total-cost": 18000}
		]}`))
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/history", cookie)

	body := rec.Body.String()
	assert.Contains(t, body, "2 Rices @ Ugx 10000")
	assert.Contains(t, body, "1 Burger @ Ugx 8000")
}

func TestHistoryEmptyState(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/history", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have not made any orders!")
}

func TestHistoryShowsLoadErrorWhenServerUnreachable(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/history", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not reach the server")
	assert.NotContains(t, rec.Body.String(), "You have not made any orders!")
}

func TestHistoryUnauthorizedRedirectsToLogin(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/history", cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
