package access

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type TokenParser interface {
	Parse(accessToken string) (*models.Claims, error)
}

// TokenProvider resolves identities from bearer access tokens. When Users is
// set the role comes from the store, so a demotion takes effect before the
// token expires.
type TokenProvider struct {
	Tokens TokenParser
	Users  UserLookup
}

func (p TokenProvider) Resolve(ctx context.Context, r *http.Request) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}
	raw, ok := bearerToken(r)
	if !ok {
		return models.Identity{Resolved: true}, nil
	}
	claims, err := p.Tokens.Parse(raw)
	if err != nil {
		return models.Identity{Resolved: true}, nil
	}
	id := models.Identity{
		Resolved:      true,
		Authenticated: true,
		ID:            claims.UserID,
		Role:          claims.Role,
		DisplayName:   claims.Name,
	}
	if p.Users != nil {
		u, err := p.Users.GetByID(ctx, claims.UserID)
		if err != nil {
			return models.Identity{}, fmt.Errorf("lookup user %s: %w", claims.UserID, err)
		}
		if u == nil {
			return models.Identity{Resolved: true}, nil
		}
		id.Role = u.Role
	}
	if id.Role == "" {
		id.Role = models.RoleUser
	}
	return id, nil
}

// bearerToken reads the Authorization header. Websocket handshakes cannot
// set headers from a browser, so they may pass access_token instead.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			tok := strings.TrimSpace(r.URL.Query().Get("access_token"))
			return tok, tok != ""
		}
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return tok, tok != ""
}
