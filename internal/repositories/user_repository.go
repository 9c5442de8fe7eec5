package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Srivastav4327/RentMate/internal/models"
)

const userColumns = `id, display_name, email, password_hash, role, photo_url, created_at`

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO users (id, display_name, email, password_hash, role, photo_url, created_at)
		VALUES (:id, :display_name, :email, :password_hash, :role, :photo_url, :created_at)`, u)
	if isDuplicate(err) {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.DB.GetContext(ctx, &u, r.DB.Rebind(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := r.DB.SelectContext(ctx, &list, `SELECT `+userColumns+` FROM users ORDER BY created_at`); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role models.Role) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`UPDATE users SET role = ? WHERE id = ?`), role, id)
	if err != nil {
		return err
	}
	return expectRow(res, models.ErrUserNotFound)
}
