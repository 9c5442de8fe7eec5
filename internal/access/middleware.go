package access

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type IdentityProvider interface {
	Resolve(ctx context.Context, r *http.Request) (models.Identity, error)
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(models.Identity)
	return id, ok
}

// Identify resolves the caller through the provider. A timeout leaves the
// identity unresolved, any other failure is treated as anonymous.
func Identify(ctx context.Context, provider IdentityProvider, r *http.Request) models.Identity {
	id, err := provider.Resolve(ctx, r)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.Identity{}
		}
		return models.Identity{Resolved: true}
	}
	return id
}

// Middleware returns an alice-compatible constructor guarding next with the
// requirement.
func (g Gate) Middleware(req Requirement, provider IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := Identify(r.Context(), provider, r)
			d := g.Decide(StateOf(id), req, r.URL.RequestURI())

			switch d.Outcome {
			case Render:
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
			case Placeholder:
				w.Header().Set("Retry-After", "1")
				writeGateJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "identity is still resolving"})
			default:
				if d.From != "" {
					writeGateJSON(w, http.StatusUnauthorized, map[string]string{
						"error":    "authentication required",
						"redirect": d.Location + "?from=" + url.QueryEscape(d.From),
					})
					return
				}
				writeGateJSON(w, http.StatusForbidden, map[string]string{
					"error":    "admin access required",
					"redirect": d.Location,
				})
			}
		})
	}
}

func writeGateJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
