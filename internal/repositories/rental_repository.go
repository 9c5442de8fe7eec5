package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Srivastav4327/RentMate/internal/models"
)

const rentalColumns = `id, listing_id, listing_title, listing_image, renter_id, renter_name, owner_id, owner_name,
	start_date, end_date, total_price, commission_fee, security_deposit, status, payment_status, payment_id,
	created_at, updated_at`

type RentalRepository struct {
	DB *sqlx.DB
}

func NewRentalRepository(db *sqlx.DB) *RentalRepository {
	return &RentalRepository{DB: db}
}

func (r *RentalRepository) Create(ctx context.Context, rental *models.Rental) error {
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO rentals
			(id, listing_id, listing_title, listing_image, renter_id, renter_name, owner_id, owner_name,
			 start_date, end_date, total_price, commission_fee, security_deposit, status, payment_status,
			 payment_id, created_at, updated_at)
		VALUES
			(:id, :listing_id, :listing_title, :listing_image, :renter_id, :renter_name, :owner_id, :owner_name,
			 :start_date, :end_date, :total_price, :commission_fee, :security_deposit, :status, :payment_status,
			 :payment_id, :created_at, :updated_at)`, rental)
	return err
}

func (r *RentalRepository) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	var rental models.Rental
	err := r.DB.GetContext(ctx, &rental, r.DB.Rebind(`SELECT `+rentalColumns+` FROM rentals WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *RentalRepository) ListByUser(ctx context.Context, userID string, role models.RentalRole) ([]models.Rental, error) {
	var column string
	switch role {
	case models.RoleRenter:
		column = "renter_id"
	case models.RoleOwner:
		column = "owner_id"
	default:
		return nil, fmt.Errorf("unknown rental role %q", role)
	}

	list := []models.Rental{}
	err := r.DB.SelectContext(ctx, &list, r.DB.Rebind(`
		SELECT `+rentalColumns+`
		FROM rentals
		WHERE `+column+` = ?
		ORDER BY created_at DESC`), userID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus moves a rental from one status to another. The update only
// applies while the stored status still equals from.
func (r *RentalRepository) UpdateStatus(ctx context.Context, id string, from, to models.RentalStatus) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		UPDATE rentals SET status = ?, updated_at = ? WHERE id = ? AND status = ?`),
		to, time.Now().UTC(), id, from)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrStaleRecord)
}

func (r *RentalRepository) UpdatePayment(ctx context.Context, id string, from, to models.PaymentStatus, paymentID *string) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		UPDATE rentals SET payment_status = ?, payment_id = COALESCE(?, payment_id), updated_at = ?
		WHERE id = ? AND payment_status = ?`),
		to, paymentID, time.Now().UTC(), id, from)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrStaleRecord)
}
