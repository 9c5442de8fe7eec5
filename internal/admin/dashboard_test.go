package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/repositories/memory"
	"github.com/Srivastav4327/RentMate/internal/services"
)

type stubLogger struct{}

func (stubLogger) Infof(string, ...interface{})  {}
func (stubLogger) Errorf(string, ...interface{}) {}

var adminID = models.Identity{Resolved: true, Authenticated: true, ID: "admin123", Role: models.RoleAdmin}

// flakyListings fails or blocks status writes.
type flakyListings struct {
	*memory.ListingStore
	failWith error
	gate     chan struct{}
}

func (f *flakyListings) SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error {
	if f.gate != nil {
		<-f.gate
	}
	if f.failWith != nil {
		return f.failWith
	}
	return f.ListingStore.SwapStatus(ctx, id, from, to)
}

func newDashboard(listings ListingStore) *Dashboard {
	return NewDashboard(memory.NewUserStore(memory.SeedUsers()...), listings, stubLogger{})
}

func TestSnapshotStats(t *testing.T) {
	d := newDashboard(memory.NewListingStore(memory.SeedListings()...))
	snap, err := d.Snapshot(context.Background(), adminID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Stats != (Stats{Users: 2, Admins: 1, AvailableListings: 4}) {
		t.Fatalf("unexpected stats %+v", snap.Stats)
	}
	if _, err := d.Snapshot(context.Background(), models.Identity{Resolved: true, Authenticated: true, ID: "user456", Role: models.RoleUser}); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestToggleUserRoleConfirmed(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore(memory.SeedUsers()...)
	d := NewDashboard(users, memory.NewListingStore(memory.SeedListings()...), stubLogger{})

	cmd, err := d.Execute(ctx, adminID, KindToggleUserRole, "user456")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cmd.Status != StatusConfirmed || cmd.CompletedAt == nil {
		t.Fatalf("expected confirmed command, got %+v", cmd)
	}
	u, _ := users.GetByID(ctx, "user456")
	if u.Role != models.RoleAdmin {
		t.Fatalf("store not updated: %s", u.Role)
	}
	snap, _ := d.Snapshot(ctx, adminID)
	if snap.Stats.Admins != 2 {
		t.Fatalf("snapshot not updated: %+v", snap.Stats)
	}

	got, ok := d.Command(cmd.ID)
	if !ok || got.Status != StatusConfirmed {
		t.Fatalf("command not retrievable: %+v %v", got, ok)
	}
}

func TestToggleOwnRoleFails(t *testing.T) {
	d := newDashboard(memory.NewListingStore(memory.SeedListings()...))
	cmd, err := d.Execute(context.Background(), adminID, KindToggleUserRole, "admin123")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cmd.Status != StatusFailed || cmd.Error == "" {
		t.Fatalf("expected failed command, got %+v", cmd)
	}
}

func TestFailedWriteLeavesSnapshotUntouched(t *testing.T) {
	ctx := context.Background()
	listings := &flakyListings{ListingStore: memory.NewListingStore(memory.SeedListings()...), failWith: errors.New("write refused")}
	d := newDashboard(listings)
	before, _ := d.Snapshot(ctx, adminID)

	cmd, err := d.Execute(ctx, adminID, KindToggleListingStatus, "item1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cmd.Status != StatusFailed || cmd.Error != "write refused" {
		t.Fatalf("expected failed command, got %+v", cmd)
	}
	after, _ := d.Snapshot(ctx, adminID)
	if after.Stats != before.Stats || after.Listings[len(after.Listings)-1].Status != models.ListingAvailable {
		t.Fatalf("snapshot changed after failed command: %+v", after.Stats)
	}
}

func TestToggleListingLosesToRentalActivation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewListingStore(memory.SeedListings()...)
	listings := &flakyListings{ListingStore: store, gate: make(chan struct{})}
	d := newDashboard(listings)

	done := make(chan Command, 1)
	go func() {
		cmd, _ := d.Execute(ctx, adminID, KindToggleListingStatus, "item1")
		done <- cmd
	}()
	deadline := time.Now().Add(2 * time.Second)
	for len(d.Commands()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("command never recorded")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := store.SetStatus(ctx, "item1", models.ListingRented); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	close(listings.gate)

	cmd := <-done
	if cmd.Status != StatusFailed {
		t.Fatalf("expected failed command, got %+v", cmd)
	}
	if l, _ := store.GetByID(ctx, "item1"); l.Status != models.ListingRented {
		t.Fatalf("rented status overwritten with %s", l.Status)
	}
}

func TestCommandPendingUntilStoreConfirms(t *testing.T) {
	ctx := context.Background()
	listings := &flakyListings{ListingStore: memory.NewListingStore(memory.SeedListings()...), gate: make(chan struct{})}
	d := newDashboard(listings)
	if _, err := d.Snapshot(ctx, adminID); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	done := make(chan Command, 1)
	go func() {
		cmd, _ := d.Execute(ctx, adminID, KindToggleListingStatus, "item4")
		done <- cmd
	}()

	deadline := time.Now().Add(2 * time.Second)
	for len(d.Commands()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("command never recorded")
		}
		time.Sleep(5 * time.Millisecond)
	}
	pending := d.Commands()[0]
	if pending.Status != StatusPending {
		t.Fatalf("expected pending command, got %+v", pending)
	}
	snap, _ := d.Snapshot(ctx, adminID)
	if snap.Stats.AvailableListings != 4 {
		t.Fatalf("snapshot changed before confirmation: %+v", snap.Stats)
	}

	close(listings.gate)
	cmd := <-done
	if cmd.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %+v", cmd)
	}
	snap, _ = d.Snapshot(ctx, adminID)
	if snap.Stats.AvailableListings != 3 {
		t.Fatalf("snapshot not updated after confirmation: %+v", snap.Stats)
	}
}

func TestRemoveListing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewListingStore(memory.SeedListings()...)
	d := newDashboard(store)

	cmd, err := d.Execute(ctx, adminID, KindRemoveListing, "item5")
	if err != nil || cmd.Status != StatusConfirmed {
		t.Fatalf("Execute: %+v %v", cmd, err)
	}
	snap, _ := d.Snapshot(ctx, adminID)
	for _, l := range snap.Listings {
		if l.ID == "item5" {
			t.Fatal("removed listing still in snapshot")
		}
	}
	if l, _ := store.GetByID(ctx, "item5"); l != nil {
		t.Fatal("listing not removed from store")
	}

	again, _ := d.Execute(ctx, adminID, KindRemoveListing, "item5")
	if again.Status != StatusFailed {
		t.Fatalf("expected second removal to fail, got %+v", again)
	}
}

func TestExecuteRejectsNonAdminAndUnknownKind(t *testing.T) {
	d := newDashboard(memory.NewListingStore())
	user := models.Identity{Resolved: true, Authenticated: true, ID: "user456", Role: models.RoleUser}
	if _, err := d.Execute(context.Background(), user, KindRemoveListing, "item1"); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := d.Execute(context.Background(), adminID, "delete_everything", "x"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if len(d.Commands()) != 0 {
		t.Fatal("rejected commands must not be recorded")
	}
}
