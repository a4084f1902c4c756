package handlers_test

import (
	"net/http"
	"testing"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "admin@inventory.test", "password": "WrongPass1!",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}

	// Malformed email short-circuits before the store is consulted
	resp, err = app.Test(jsonReq(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "not-an-email", "password": "Passw0rd!",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestLoginBindsSessionCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "admin@inventory.test", "password": "Passw0rd!",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var sid string
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			sid = ck.Value
		}
	}
	if sid == "" {
		t.Fatal("login did not set a sid cookie")
	}

	var u struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		Hash  string `json:"password_hash"`
	}
	decodeBody(t, resp, &u)
	if u.Role != "ADMIN" || u.Email != "admin@inventory.test" {
		t.Fatalf("unexpected principal: %+v", u)
	}
	if u.Hash != "" {
		t.Fatal("password hash leaked in response")
	}

	// The fresh session works against /auth/me
	resp, err = app.Test(jsonReq(t, "GET", "/api/v1/auth/me", sid, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: want 200, got %d", resp.StatusCode)
	}
}

func TestMeRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq(t, "GET", "/api/v1/auth/me", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq(t, "GET", "/api/v1/auth/me", "sid-dead", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("dead session: want 401, got %d", resp.StatusCode)
	}
}
