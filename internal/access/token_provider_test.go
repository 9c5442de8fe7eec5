package access

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/utils"
)

func TestTokenProviderResolve(t *testing.T) {
	m, err := utils.NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := m.NewJWT(models.User{ID: "admin123", Role: models.RoleAdmin, DisplayName: "Admin User"}, time.Minute)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	p := TokenProvider{Tokens: m}

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	id, err := p.Resolve(context.Background(), r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if StateOf(id) != StateAdmin || id.ID != "admin123" {
		t.Fatalf("unexpected identity %+v", id)
	}

	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	id, _ = p.Resolve(context.Background(), anon)
	if StateOf(id) != StateUnauthenticated {
		t.Fatalf("expected unauthenticated without header, got %+v", id)
	}

	bad := httptest.NewRequest(http.MethodGet, "/", nil)
	bad.Header.Set("Authorization", "Bearer not-a-token")
	id, _ = p.Resolve(context.Background(), bad)
	if StateOf(id) != StateUnauthenticated {
		t.Fatalf("expected unauthenticated for invalid token, got %+v", id)
	}
}

type fixedProvider struct {
	id  models.Identity
	err error
}

func (p fixedProvider) Resolve(ctx context.Context, r *http.Request) (models.Identity, error) {
	return p.id, p.err
}

func TestChainFirstAuthenticatedWins(t *testing.T) {
	anon := fixedProvider{id: models.Identity{Resolved: true}}
	signedIn := fixedProvider{id: models.Identity{Resolved: true, Authenticated: true, ID: "user456", Role: models.RoleUser}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id, err := Chain{anon, signedIn}.Resolve(context.Background(), req)
	if err != nil || id.ID != "user456" {
		t.Fatalf("expected second provider identity, got %+v %v", id, err)
	}

	id, err = Chain{anon, anon}.Resolve(context.Background(), req)
	if err != nil || !id.Resolved || id.Authenticated {
		t.Fatalf("expected resolved anonymous identity, got %+v %v", id, err)
	}

	id, _ = Chain{fixedProvider{}, signedIn}.Resolve(context.Background(), req)
	if id.Resolved {
		t.Fatalf("unresolved provider must stop the chain, got %+v", id)
	}
}

func TestTokenProviderWebsocketQueryToken(t *testing.T) {
	m, err := utils.NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := m.NewJWT(models.User{ID: "user456", Role: models.RoleUser}, time.Minute)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	p := TokenProvider{Tokens: m}

	req := httptest.NewRequest(http.MethodGet, "/ws?access_token="+token, nil)
	req.Header.Set("Upgrade", "websocket")
	id, err := p.Resolve(context.Background(), req)
	if err != nil || !id.Authenticated || id.ID != "user456" {
		t.Fatalf("expected websocket query token to authenticate, got %+v %v", id, err)
	}

	plain := httptest.NewRequest(http.MethodGet, "/rentals?access_token="+token, nil)
	id, _ = p.Resolve(context.Background(), plain)
	if id.Authenticated {
		t.Fatal("query token must only be honoured on websocket handshakes")
	}
}

func TestTokenProviderRoleFollowsStore(t *testing.T) {
	m, err := utils.NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := m.NewJWT(models.User{ID: "admin123", Role: models.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	users := stubUsers{"admin123": {ID: "admin123", Role: models.RoleAdmin}}
	h := DefaultGate.Middleware(RequireAdmin, TokenProvider{Tokens: m, Users: users})(okHandler(t, "admin123"))

	cases := []struct {
		name   string
		setup  func()
		status int
	}{
		{"admin in store", func() {}, http.StatusOK},
		{"demoted after issue", func() { users["admin123"].Role = models.RoleUser }, http.StatusForbidden},
		{"deleted after issue", func() { delete(users, "admin123") }, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			r.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body)
			}
		})
	}
}
