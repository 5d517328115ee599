package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackshop/snack-shop-backend/internal/catalog"
)

func newCartApp(t *testing.T) *fiber.App {
	t.Helper()
	seed := []catalog.Product{
		{ID: 1, Name: "Tangyuan", Price: 4.50},
		{ID: 2, Name: "Qingtuan", Price: 3.20},
	}
	store := NewSessionStore(session.New())
	service := NewService(store, catalog.NewService(catalog.NewInMemoryRepository(seed)))

	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)
	return app
}

func postCart(t *testing.T, app *fiber.App, body string, cookies []*http.Cookie) (*http.Response, View) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	res, err := app.Test(req)
	require.NoError(t, err)

	var view View
	if res.StatusCode == 200 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
	}
	return res, view
}

func TestCartHandler_AddThenGetSurvivesSession(t *testing.T) {
	app := newCartApp(t)

	res, view := postCart(t, app, `{"action":"add","product_id":1,"quantity":2}`, nil)
	require.Equal(t, 200, res.StatusCode)
	assert.Equal(t, 2, view.ItemsCount)

	// replay the session cookie on a plain GET
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	for _, c := range res.Cookies() {
		req.AddCookie(c)
	}
	getRes, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, getRes.StatusCode)

	var got View
	require.NoError(t, json.NewDecoder(getRes.Body).Decode(&got))
	assert.Equal(t, 2, got.ItemsCount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Product.ID)
}

func TestCartHandler_DecrementToZeroRemovesLine(t *testing.T) {
	app := newCartApp(t)

	res, _ := postCart(t, app, `{"action":"add","product_id":2,"quantity":1}`, nil)
	cookies := res.Cookies()

	res2, view := postCart(t, app, `{"action":"decrement","product_id":2}`, cookies)
	require.Equal(t, 200, res2.StatusCode)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.ItemsCount)
}

func TestCartHandler_AddDefaultsQuantityToOne(t *testing.T) {
	app := newCartApp(t)

	res, view := postCart(t, app, `{"action":"add","product_id":1}`, nil)
	require.Equal(t, 200, res.StatusCode)
	assert.Equal(t, 1, view.ItemsCount)
}

func TestCartHandler_RejectsBadInput(t *testing.T) {
	app := newCartApp(t)

	res, _ := postCart(t, app, `{"action":"add","product_id":0,"quantity":1}`, nil)
	assert.Equal(t, 400, res.StatusCode)

	res2, _ := postCart(t, app, `{"action":"teleport","product_id":1}`, nil)
	assert.Equal(t, 400, res2.StatusCode)
}
