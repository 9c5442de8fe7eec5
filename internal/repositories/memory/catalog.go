package memory

import (
	"context"
	"sync"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type CatalogStore struct {
	mu         sync.RWMutex
	categories []models.Category
	cities     []models.City
}

func NewCatalogStore(categories []models.Category, cities []models.City) *CatalogStore {
	return &CatalogStore{
		categories: append([]models.Category(nil), categories...),
		cities:     append([]models.City(nil), cities...),
	}
}

func (s *CatalogStore) Categories(ctx context.Context) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category{}, s.categories...), nil
}

func (s *CatalogStore) Cities(ctx context.Context) ([]models.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.City{}, s.cities...), nil
}
