package access

import (
	"context"
	"fmt"
	"net/http"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// FirebaseProvider resolves identities from Firebase ID tokens. Roles live in
// the user store; a user without a record is a regular user.
type FirebaseProvider struct {
	Verifier IDTokenVerifier
	Users    UserLookup
}

func NewFirebaseApp(ctx context.Context, credentialsFile string) (*firebase.App, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	return app, nil
}

func NewFirebaseProvider(ctx context.Context, app *firebase.App, users UserLookup) (*FirebaseProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseProvider{Verifier: client, Users: users}, nil
}

func (p *FirebaseProvider) Resolve(ctx context.Context, r *http.Request) (models.Identity, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return models.Identity{Resolved: true}, nil
	}
	token, err := p.Verifier.VerifyIDToken(ctx, raw)
	if err != nil {
		if ctx.Err() != nil {
			return models.Identity{}, ctx.Err()
		}
		return models.Identity{Resolved: true}, nil
	}

	id := models.Identity{
		Resolved:      true,
		Authenticated: true,
		ID:            token.UID,
		Role:          models.RoleUser,
	}
	if name, ok := token.Claims["name"].(string); ok {
		id.DisplayName = name
	}

	user, err := p.Users.GetByID(ctx, token.UID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("lookup firebase user %s: %w", token.UID, err)
	}
	if user != nil {
		id.Role = user.Role
		if id.DisplayName == "" {
			id.DisplayName = user.DisplayName
		}
	}
	return id, nil
}
