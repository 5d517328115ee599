package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/snackshop/snack-shop-backend/internal/cart"
	"github.com/snackshop/snack-shop-backend/internal/catalog"
	"github.com/snackshop/snack-shop-backend/internal/user"
)

func newCheckoutApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	seed := []catalog.Product{{ID: 1, Name: "Tangyuan", Price: 4.50}}
	catalogSvc := catalog.NewService(catalog.NewInMemoryRepository(seed))
	cartSvc := cart.NewService(cart.NewSessionStore(session.New()), catalogSvc)
	userSvc := user.NewService(user.NewInMemoryRepository([]user.User{
		{ID: 7, Username: "mei", Email: "mei@example.com"},
	}))
	orderHandler := NewHandler(NewService(&memoryRepository{}), cartSvc, userSvc)

	app := fiber.New()
	cart.NewHandler(cartSvc).RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte("test-secret")}))
	orderHandler.RegisterProtectedRoutes(app)

	token, err := user.SignToken(7, "mei", false)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return app, token
}

func TestCheckoutHandler_PlacesOrderAndEmptiesCart(t *testing.T) {
	app, token := newCheckoutApp(t)

	// fill the cart, public route, session cookie comes back
	addReq := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"action":"add","product_id":1,"quantity":2}`))
	addReq.Header.Set("Content-Type", "application/json")
	addRes, err := app.Test(addReq)
	if err != nil {
		t.Fatalf("cart request failed: %v", err)
	}
	cookies := addRes.Cookies()

	req := httptest.NewRequest("POST", "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var summary struct {
		Order Order  `json:"order"`
		Total string `json:"total"`
	}
	if err := json.NewDecoder(res.Body).Decode(&summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.Order.Status != StatusPending {
		t.Fatalf("expected Pending order, got %q", summary.Order.Status)
	}
	if summary.Order.CustomerEmail != "mei@example.com" {
		t.Fatalf("customer email should come from the account, got %q", summary.Order.CustomerEmail)
	}

	// the session cart must now be empty
	getReq := httptest.NewRequest("GET", "/api/v1/cart", nil)
	for _, c := range mergeCookies(cookies, res.Cookies()) {
		getReq.AddCookie(c)
	}
	getRes, err := app.Test(getReq)
	if err != nil {
		t.Fatalf("cart request failed: %v", err)
	}
	var view cart.View
	if err := json.NewDecoder(getRes.Body).Decode(&view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.ItemsCount != 0 {
		t.Fatalf("checkout should empty the cart, got %+v", view)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	app, token := newCheckoutApp(t)

	req := httptest.NewRequest("POST", "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for an empty cart, got %d", res.StatusCode)
	}
}

func TestCheckoutHandler_RequiresToken(t *testing.T) {
	app, _ := newCheckoutApp(t)

	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/checkout", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 401 {
		t.Fatalf("expected 401 without a token, got %d", res.StatusCode)
	}
}

// mergeCookies overlays later cookies on the original session set.
func mergeCookies(older, newer []*http.Cookie) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, c := range older {
		byName[c.Name] = c
	}
	for _, c := range newer {
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	return out
}
