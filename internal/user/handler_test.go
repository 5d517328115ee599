package user

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

func newUserApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	h := NewHandler(NewService(NewInMemoryRepository(nil)), nil)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte("test-secret")}))
	h.RegisterProtectedRoutes(app)
	return app
}

func TestSignUpThenSignIn(t *testing.T) {
	app := newUserApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"username":"mei","email":"mei@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created User
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Password != "" {
		t.Fatalf("password must never appear in responses")
	}

	login := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"mei@example.com","password":"secret"}`))
	login.Header.Set("Content-Type", "application/json")
	loginRes, err := app.Test(login)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if loginRes.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", loginRes.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(loginRes.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected a token")
	}

	// the token opens the profile route
	profile := httptest.NewRequest("GET", "/api/v1/profile", nil)
	profile.Header.Set("Authorization", "Bearer "+body.Token)
	profileRes, err := app.Test(profile)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profileRes.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", profileRes.StatusCode)
	}
}

func TestSignUp_Validation(t *testing.T) {
	app := newUserApp(t)

	cases := []string{
		`{"email":"mei@example.com","password":"secret"}`,
		`{"username":"mei","password":"secret"}`,
		`{"username":"mei","email":"mei@example.com"}`,
		`{"username":"mei","email":"not-an-email","password":"secret"}`,
	}
	for i, body := range cases {
		req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("case %d failed: %v", i, err)
		}
		if res.StatusCode != 400 {
			t.Fatalf("case %d: expected 400, got %d", i, res.StatusCode)
		}
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	app := newUserApp(t)

	body := `{"username":"mei","email":"mei@example.com","password":"secret"}`
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}

	dup := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	dup.Header.Set("Content-Type", "application/json")
	res, err := app.Test(dup)
	if err != nil {
		t.Fatalf("second sign-up failed: %v", err)
	}
	if res.StatusCode != 409 {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
}

func TestSignIn_BadPassword(t *testing.T) {
	app := newUserApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"nobody@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res.StatusCode != 401 {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}
