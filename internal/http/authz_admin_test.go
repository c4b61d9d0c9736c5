package handlers_test

import (
	"net/http"
	"testing"
)

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	// Anonymous -> 401
	resp, _ := doJSON(t, app, "GET", "/api/admin/orders", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", resp.StatusCode)
	}

	// Logged-in shopper -> 403, and the status write is refused
	userTok := login(t, app, "demo", "Passw0rd!")
	resp, _ = doJSON(t, app, "GET", "/api/admin/orders", userTok, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("shopper list: expected 403, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "PUT", "/api/admin/orders/some-id/status", userTok, `{"status":"shipped"}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("shopper update: expected 403, got %d", resp.StatusCode)
	}

	// Admin -> 200
	adminTok := login(t, app, "admin", "Passw0rd!")
	resp, _ = doJSON(t, app, "GET", "/api/admin/orders", adminTok, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", resp.StatusCode)
	}
}

func TestCartRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, "GET", "/api/cart", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "POST", "/api/orders", "", `{"shipping_address":"x"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
