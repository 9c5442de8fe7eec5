package services

import (
	"context"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/notify"
)

// Logger provides minimal logging required by the services.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Getters return nil, nil when the record does not exist.

type ListingStore interface {
	List(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, l *models.Listing) error
	Update(ctx context.Context, l *models.Listing) error
	SetStatus(ctx context.Context, id string, status models.ListingStatus) error
	SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error
	SoftDelete(ctx context.Context, id string) error
}

type RentalStore interface {
	Create(ctx context.Context, r *models.Rental) error
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	ListByUser(ctx context.Context, userID string, role models.RentalRole) ([]models.Rental, error)
	UpdateStatus(ctx context.Context, id string, from, to models.RentalStatus) error
	UpdatePayment(ctx context.Context, id string, from, to models.PaymentStatus, paymentID *string) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) error
}

type SessionStore interface {
	Save(ctx context.Context, s models.Session) error
	Take(ctx context.Context, refreshToken string) (*models.Session, error)
	Delete(ctx context.Context, refreshToken string) error
}

type CatalogStore interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Cities(ctx context.Context) ([]models.City, error)
}

type DeviceTokenStore interface {
	Add(ctx context.Context, userID, token string) error
	Remove(ctx context.Context, token string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID string, ev notify.Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, notify.Event) {}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
