package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Srivastav4327/RentMate/internal/models"
)

const listingColumns = `id, title, description, category, price, deposit, location, city, state, images,
	owner_id, owner_name, owner_photo, status, featured, created_at, updated_at, deleted_at`

type ListingRepository struct {
	DB *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{DB: db}
}

// List returns every listing that has not been removed, newest first.
func (r *ListingRepository) List(ctx context.Context) ([]models.Listing, error) {
	var list []models.Listing
	err := r.DB.SelectContext(ctx, &list, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var l models.Listing
	err := r.DB.GetContext(ctx, &l, r.DB.Rebind(`
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = ? AND deleted_at IS NULL`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *models.Listing) error {
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO listings
			(id, title, description, category, price, deposit, location, city, state, images,
			 owner_id, owner_name, owner_photo, status, featured, created_at, updated_at)
		VALUES
			(:id, :title, :description, :category, :price, :deposit, :location, :city, :state, :images,
			 :owner_id, :owner_name, :owner_photo, :status, :featured, :created_at, :updated_at)`, l)
	return err
}

// Update writes the editable fields. Status changes go through SetStatus or SwapStatus.
func (r *ListingRepository) Update(ctx context.Context, l *models.Listing) error {
	res, err := r.DB.NamedExecContext(ctx, `
		UPDATE listings SET
			title       = :title,
			description = :description,
			category    = :category,
			price       = :price,
			deposit     = :deposit,
			location    = :location,
			city        = :city,
			state       = :state,
			images      = :images,
			featured    = :featured,
			updated_at  = :updated_at
		WHERE id = :id AND deleted_at IS NULL`, l)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrListingNotFound)
}

func (r *ListingRepository) SetStatus(ctx context.Context, id string, status models.ListingStatus) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		UPDATE listings SET status = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`),
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrListingNotFound)
}

// SwapStatus is the compare-and-set form of SetStatus used for owner and admin edits.
func (r *ListingRepository) SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		UPDATE listings SET status = ?, updated_at = ? WHERE id = ? AND status = ? AND deleted_at IS NULL`),
		to, time.Now().UTC(), id, from)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrStaleRecord)
}

func (r *ListingRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		UPDATE listings SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`),
		now, now, id)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrListingNotFound)
}
