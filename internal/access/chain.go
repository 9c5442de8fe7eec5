package access

import (
	"context"
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/models"
)

// Chain asks each provider in turn and returns the first authenticated
// identity. An unresolved answer stops the chain so the gate can wait.
type Chain []IdentityProvider

func (c Chain) Resolve(ctx context.Context, r *http.Request) (models.Identity, error) {
	last := models.Identity{Resolved: true}
	for _, p := range c {
		id, err := p.Resolve(ctx, r)
		if err != nil {
			return models.Identity{}, err
		}
		if !id.Resolved || id.Authenticated {
			return id, nil
		}
		last = id
	}
	return last, nil
}
