package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type CatalogRepository struct {
	DB *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.DB.SelectContext(ctx, &list, `SELECT id, name FROM categories ORDER BY position`); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CatalogRepository) Cities(ctx context.Context) ([]models.City, error) {
	var list []models.City
	if err := r.DB.SelectContext(ctx, &list, `SELECT id, name, state FROM cities ORDER BY name`); err != nil {
		return nil, err
	}
	return list, nil
}
