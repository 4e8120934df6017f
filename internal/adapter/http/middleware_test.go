package adapthttp_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"inhome/internal/domain"
)

func TestPageGuardRedirectsAnonymousToLogin(t *testing.T) {
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, &mockStore{})
	client := noRedirectClient()

	for _, page := range []string{"/", "/dashboard", "/products", "/create-user"} {
		resp, err := client.Get(ts.URL + page)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("%s: status = %d, want 303", page, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Fatalf("%s: redirected to %q, want /login", page, loc)
		}
	}
}

func TestPageGuardLoginPageIsPublic(t *testing.T) {
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, &mockStore{})

	resp, err := http.Get(ts.URL + "/login")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPageGuardSignedInLeavesLoginPage(t *testing.T) {
	store := &mockStore{token: "tok", user: &domain.User{ID: "u1", Role: "admin"}}
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, store)
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/login")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirected to %q, want /dashboard", loc)
	}
}

// An admin visiting the superadmin-only page is sent back to the dashboard,
// not to the login page: the account is valid, just under-privileged.
func TestPageGuardAdminBouncedFromCreateUser(t *testing.T) {
	store := &mockStore{token: "tok", user: &domain.User{ID: "u1", Role: "admin"}}
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, store)
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/create-user")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirected to %q, want /dashboard", loc)
	}
}

func TestPageGuardSuperAdminReachesCreateUser(t *testing.T) {
	store := &mockStore{token: "tok", user: &domain.User{ID: "u1", Role: "superadmin"}}
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, store)

	resp, err := http.Get(ts.URL + "/create-user")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPageGuardAssetsBypassRedirects(t *testing.T) {
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, &mockStore{})
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/app.js")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "assets") {
		t.Fatalf("unexpected asset body: %q", body)
	}
}

func TestResponsesAreNotCached(t *testing.T) {
	ts := newTestServer(t, &mockDirectory{}, &mockCatalog{}, &mockStore{})

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("Cache-Control = %q, want no-store", cc)
	}
}
