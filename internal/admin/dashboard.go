// Package admin implements the moderation dashboard. Every change is a
// command that stays pending until the authoritative store confirms it.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/services"
)

type Kind string

const (
	KindToggleUserRole      Kind = "toggle_user_role"
	KindToggleListingStatus Kind = "toggle_listing_status"
	KindRemoveListing       Kind = "remove_listing"
)

func (k Kind) Valid() bool {
	switch k {
	case KindToggleUserRole, KindToggleListingStatus, KindRemoveListing:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

const maxCommands = 500

var ErrUnknownKind = errors.New("admin: unknown command kind")

type Command struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	TargetID    string     `json:"target_id"`
	IssuedBy    string     `json:"issued_by"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Stats struct {
	Users             int `json:"users"`
	Admins            int `json:"admins"`
	AvailableListings int `json:"available_listings"`
}

type Snapshot struct {
	Users    []models.User    `json:"users"`
	Listings []models.Listing `json:"listings"`
	Stats    Stats            `json:"stats"`
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) error
}

type ListingStore interface {
	List(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error
	SoftDelete(ctx context.Context, id string) error
}

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Dashboard holds the admin view of users and listings. Commands run one at a
// time so snapshot updates apply in invocation order; the store write happens
// outside mu so a pending command stays observable.
type Dashboard struct {
	Users    UserStore
	Listings ListingStore
	Logger   Logger

	execMu   sync.Mutex
	mu       sync.Mutex
	loaded   bool
	users    []models.User
	listings []models.Listing
	commands map[string]*Command
	order    []string
	now      func() time.Time
}

func NewDashboard(users UserStore, listings ListingStore, logger Logger) *Dashboard {
	return &Dashboard{
		Users:    users,
		Listings: listings,
		Logger:   logger,
		commands: make(map[string]*Command),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Refresh reloads the snapshot from the stores.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

func (d *Dashboard) load(ctx context.Context) error {
	users, err := d.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	listings, err := d.Listings.List(ctx)
	if err != nil {
		return fmt.Errorf("load listings: %w", err)
	}
	d.users, d.listings, d.loaded = users, listings, true
	return nil
}

func (d *Dashboard) Snapshot(ctx context.Context, actor models.Identity) (Snapshot, error) {
	if !actor.IsAdmin() {
		return Snapshot{}, services.ErrForbidden
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		if err := d.load(ctx); err != nil {
			return Snapshot{}, err
		}
	}
	return Snapshot{
		Users:    slices.Clone(d.users),
		Listings: slices.Clone(d.listings),
		Stats:    d.stats(),
	}, nil
}

func (d *Dashboard) stats() Stats {
	var s Stats
	s.Users = len(d.users)
	for _, u := range d.users {
		if u.Role == models.RoleAdmin {
			s.Admins++
		}
	}
	for _, l := range d.listings {
		if l.Status == models.ListingAvailable {
			s.AvailableListings++
		}
	}
	return s
}

// Execute records the command as pending, performs the write and then marks
// it confirmed, or failed without touching the snapshot.
func (d *Dashboard) Execute(ctx context.Context, actor models.Identity, kind Kind, targetID string) (Command, error) {
	if !actor.IsAdmin() {
		return Command{}, services.ErrForbidden
	}
	if !kind.Valid() {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	d.execMu.Lock()
	defer d.execMu.Unlock()

	d.mu.Lock()
	if !d.loaded {
		if err := d.load(ctx); err != nil {
			d.mu.Unlock()
			return Command{}, err
		}
	}
	cmd := &Command{
		ID:        uuid.NewString(),
		Kind:      kind,
		TargetID:  targetID,
		IssuedBy:  actor.ID,
		Status:    StatusPending,
		CreatedAt: d.now(),
	}
	d.remember(cmd)
	d.mu.Unlock()

	var apply func()
	var err error
	switch kind {
	case KindToggleUserRole:
		apply, err = d.toggleUserRole(ctx, actor, targetID)
	case KindToggleListingStatus:
		apply, err = d.toggleListingStatus(ctx, targetID)
	case KindRemoveListing:
		apply, err = d.removeListing(ctx, targetID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	done := d.now()
	cmd.CompletedAt = &done
	if err != nil {
		cmd.Status = StatusFailed
		cmd.Error = err.Error()
		d.Logger.Errorf("admin command %s %s on %s failed: %v", cmd.ID, kind, targetID, err)
		return *cmd, nil
	}
	apply()
	cmd.Status = StatusConfirmed
	d.Logger.Infof("admin command %s %s on %s confirmed", cmd.ID, kind, targetID)
	return *cmd, nil
}

func (d *Dashboard) Command(id string) (Command, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cmd, ok := d.commands[id]
	if !ok {
		return Command{}, false
	}
	return *cmd, true
}

// Commands returns the retained commands, oldest first.
func (d *Dashboard) Commands() []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Command, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.commands[id])
	}
	return out
}

func (d *Dashboard) remember(cmd *Command) {
	d.commands[cmd.ID] = cmd
	d.order = append(d.order, cmd.ID)
	if len(d.order) > maxCommands {
		delete(d.commands, d.order[0])
		d.order = d.order[1:]
	}
}

func (d *Dashboard) toggleUserRole(ctx context.Context, actor models.Identity, id string) (func(), error) {
	if id == actor.ID {
		return nil, errors.New("admins cannot change their own role")
	}
	u, err := d.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, models.ErrUserNotFound
	}
	role := models.RoleAdmin
	if u.Role == models.RoleAdmin {
		role = models.RoleUser
	}
	if err := d.Users.SetRole(ctx, id, role); err != nil {
		return nil, err
	}
	return func() {
		for i := range d.users {
			if d.users[i].ID == id {
				d.users[i].Role = role
			}
		}
	}, nil
}

func (d *Dashboard) toggleListingStatus(ctx context.Context, id string) (func(), error) {
	l, err := d.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, models.ErrListingNotFound
	}
	var status models.ListingStatus
	switch l.Status {
	case models.ListingAvailable:
		status = models.ListingUnavailable
	case models.ListingUnavailable:
		status = models.ListingAvailable
	default:
		return nil, fmt.Errorf("listing %s is %s", id, l.Status)
	}
	if err := d.Listings.SwapStatus(ctx, id, l.Status, status); err != nil {
		return nil, err
	}
	return func() {
		for i := range d.listings {
			if d.listings[i].ID == id {
				d.listings[i].Status = status
			}
		}
	}, nil
}

func (d *Dashboard) removeListing(ctx context.Context, id string) (func(), error) {
	if err := d.Listings.SoftDelete(ctx, id); err != nil {
		return nil, err
	}
	return func() {
		d.listings = slices.DeleteFunc(d.listings, func(l models.Listing) bool { return l.ID == id })
	}, nil
}
