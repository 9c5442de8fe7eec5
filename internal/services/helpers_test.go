package services

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/notify"
)

type testLogger struct{ t *testing.T }

func (l testLogger) Infof(format string, args ...interface{})  { l.t.Logf("INFO "+format, args...) }
func (l testLogger) Errorf(format string, args ...interface{}) { l.t.Logf("ERROR "+format, args...) }

type sentEvent struct {
	userID string
	event  notify.Event
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentEvent
}

func (n *recordingNotifier) Notify(ctx context.Context, userID string, ev notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEvent{userID: userID, event: ev})
}

// countingRentals fails loudly if a rejected request reaches the store.
type countingRentals struct {
	RentalStore
	creates int
}

func (c *countingRentals) Create(ctx context.Context, r *models.Rental) error {
	c.creates++
	return nil
}

func user(id, name string) models.Identity {
	return models.Identity{Resolved: true, Authenticated: true, ID: id, Role: models.RoleUser, DisplayName: name}
}

func admin() models.Identity {
	return models.Identity{Resolved: true, Authenticated: true, ID: "admin123", Role: models.RoleAdmin, DisplayName: "Admin User"}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
