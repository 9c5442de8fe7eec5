package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type DeviceTokenRepository struct {
	DB *sqlx.DB
}

func NewDeviceTokenRepository(db *sqlx.DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{DB: db}
}

func (r *DeviceTokenRepository) Add(ctx context.Context, userID, token string) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
		INSERT INTO notify_tokens (user_id, token, created_at) VALUES (?, ?, ?)`),
		userID, token, time.Now().UTC())
	if isDuplicate(err) {
		return nil
	}
	return err
}

func (r *DeviceTokenRepository) TokensFor(ctx context.Context, userID string) ([]string, error) {
	var tokens []string
	err := r.DB.SelectContext(ctx, &tokens, r.DB.Rebind(`SELECT token FROM notify_tokens WHERE user_id = ?`), userID)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *DeviceTokenRepository) Remove(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`DELETE FROM notify_tokens WHERE token = ?`), token)
	return err
}
