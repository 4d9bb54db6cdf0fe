package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"fastfood-ui/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuJSON = `{"menu": [
	{"id": 1, "item": "Rice", "unit": "plate", "rate": 5000},
	{"id": 2, "item": "Chips", "unit": "pack", "rate": 3000}
]}`

func menuAPI(t *testing.T, placeStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/menu", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(menuJSON))
	})
	mux.HandleFunc("/users/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(placeStatus)
	})
	return httptest.NewServer(mux)
}

func TestMenuEmptyState(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/menu", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The food menu is empty!")
	assert.NotContains(t, rec.Body.String(), "menu-item")
}

func TestMenuRendersItems(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/menu", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Rice")
	assert.Contains(t, body, "Ugx 5000 per plate")
	assert.Contains(t, body, "Ugx 3000 per pack")
}

func TestMenuUnauthorizedRedirectsToLogin(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)

	rec := get(router, "/menu", cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	_, ok := sessions.Get(session.ID)
	assert.False(t, ok, "a 401 must end the session")
}

func TestAddToCartUpsertsByName(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)

	rec := postForm(router, "/cart", url.Values{
		"item":     {"Rice"},
		"unit":     {"plate"},
		"rate":     {"5000"},
		"quantity": {"2"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = postForm(router, "/cart", url.Values{
		"item":     {"Rice"},
		"unit":     {"plate"},
		"rate":     {"5000"},
		"quantity": {"3"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	lines, total := session.CartView()
	require.Len(t, lines, 1)
	assert.Equal(t, models.OrderItem{Item: "Rice", Quantity: 3, Cost: 15000}, lines[0])
	assert.Equal(t, 15000, total)
}

func TestMenuShowsLoadErrorWhenServerUnreachable(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := get(router, "/menu", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not reach the server")
	assert.NotContains(t, rec.Body.String(), "The food menu is empty!")
}

// Two browser tabs on one session can hit the cart and the menu page at the
// same time; the shared session state must hold up under that.
func TestConcurrentCartAndMenuRequests(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			postForm(router, "/cart", url.Values{
				"item":     {"Rice"},
				"unit":     {"plate"},
				"rate":     {"5000"},
				"quantity": {"2"},
			}, cookie)
		}()
		go func() {
			defer wg.Done()
			get(router, "/menu", cookie)
		}()
	}
	wg.Wait()

	lines, total := session.CartView()
	require.Len(t, lines, 1)
	assert.Equal(t, models.OrderItem{Item: "Rice", Quantity: 2, Cost: 10000}, lines[0])
	assert.Equal(t, 10000, total)
}

func TestMenuPageShowsCartTotal(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)
	session.AddToCart("Rice", 2, 5000)
	session.AddToCart("Chips", 1, 3000)

	rec := get(router, "/menu", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total: Ugx 13000")
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)
	session.AddToCart("Rice", 2, 5000)

	rec := postForm(router, "/orders", url.Values{}, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your order has been placed!")
	assert.True(t, session.CartEmpty())
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	api := menuAPI(t, http.StatusBadRequest)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	session, cookie := signIn(sessions, false)
	session.AddToCart("Rice", 2, 5000)

	rec := postForm(router, "/orders", url.Values{}, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be placed")
	assert.False(t, session.CartEmpty())
}

func TestPlaceOrderEmptyCartRedirects(t *testing.T) {
	api := menuAPI(t, http.StatusCreated)
	defer api.Close()

	router, sessions := newTestRouter(t, api.URL)
	_, cookie := signIn(sessions, false)

	rec := postForm(router, "/orders", url.Values{}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/menu", rec.Header().Get("Location"))
}
