package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type CatalogService struct {
	Catalog CatalogStore
}

func NewCatalogService(catalog CatalogStore) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	list, err := s.Catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *CatalogService) Cities(ctx context.Context) ([]models.City, error) {
	list, err := s.Catalog.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return list, nil
}

// BrowseOptions loads categories and cities concurrently and returns once
// both have completed.
func (s *CatalogService) BrowseOptions(ctx context.Context) (models.BrowseOptions, error) {
	var opts models.BrowseOptions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.Categories(gctx)
		opts.Categories = list
		return err
	})
	g.Go(func() error {
		list, err := s.Cities(gctx)
		opts.Cities = list
		return err
	})
	if err := g.Wait(); err != nil {
		return models.BrowseOptions{}, err
	}
	return opts, nil
}
