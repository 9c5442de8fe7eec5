package access

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/auth"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return s.token, s.err
}

type stubUsers map[string]*models.User

func (s stubUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s[id], nil
}

func firebaseRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/rentals", nil)
	r.Header.Set("Authorization", "Bearer id-token")
	return r
}

func TestFirebaseProviderRoleFromStore(t *testing.T) {
	p := &FirebaseProvider{
		Verifier: stubVerifier{token: &auth.Token{UID: "admin123", Claims: map[string]interface{}{"name": "Admin User"}}},
		Users:    stubUsers{"admin123": {ID: "admin123", Role: models.RoleAdmin}},
	}
	id, err := p.Resolve(context.Background(), firebaseRequest())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if StateOf(id) != StateAdmin || id.DisplayName != "Admin User" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestFirebaseProviderDefaultsToUser(t *testing.T) {
	p := &FirebaseProvider{
		Verifier: stubVerifier{token: &auth.Token{UID: "new-user", Claims: map[string]interface{}{}}},
		Users:    stubUsers{},
	}
	id, err := p.Resolve(context.Background(), firebaseRequest())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if StateOf(id) != StateUser {
		t.Fatalf("expected user state, got %+v", id)
	}
}

func TestFirebaseProviderRejectedToken(t *testing.T) {
	p := &FirebaseProvider{Verifier: stubVerifier{err: errors.New("expired")}, Users: stubUsers{}}
	id, err := p.Resolve(context.Background(), firebaseRequest())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if StateOf(id) != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %+v", id)
	}
}
