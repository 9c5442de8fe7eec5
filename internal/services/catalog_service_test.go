package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type gatedCatalog struct {
	release   chan struct{}
	citiesErr error
}

func (g *gatedCatalog) Categories(ctx context.Context) ([]models.Category, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return models.Categories, nil
}

func (g *gatedCatalog) Cities(ctx context.Context) ([]models.City, error) {
	if g.citiesErr != nil {
		return nil, g.citiesErr
	}
	return []models.City{{ID: "pune", Name: "Pune", State: "Maharashtra"}}, nil
}

func TestBrowseOptionsWaitsForBoth(t *testing.T) {
	cat := &gatedCatalog{release: make(chan struct{})}
	svc := NewCatalogService(cat)

	type result struct {
		opts models.BrowseOptions
		err  error
	}
	done := make(chan result, 1)
	go func() {
		opts, err := svc.BrowseOptions(context.Background())
		done <- result{opts, err}
	}()

	select {
	case <-done:
		t.Fatal("BrowseOptions returned before categories were loaded")
	case <-time.After(50 * time.Millisecond):
	}

	close(cat.release)
	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("BrowseOptions: %v", res.err)
		}
		if len(res.opts.Categories) != len(models.Categories) || len(res.opts.Cities) != 1 {
			t.Fatalf("unexpected options %+v", res.opts)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("BrowseOptions did not return")
	}
}

func TestBrowseOptionsPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	cat := &gatedCatalog{release: make(chan struct{}), citiesErr: boom}
	svc := NewCatalogService(cat)

	_, err := svc.BrowseOptions(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
}
