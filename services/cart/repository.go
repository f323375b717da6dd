package cart

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/flashfood/services/cart CartRepo

// ItemsUpdate computes the new cart lines from the stored ones. It may run more than once.
type ItemsUpdate func(items []models.CartLineItem) ([]models.CartLineItem, error)

// FavoritesUpdate computes the new favourites from the stored ones. It may run more than once.
type FavoritesUpdate func(favorites []models.RestaurantSummary) ([]models.RestaurantSummary, error)

// CartRepo defines the interface for cart persistence. Loads of unknown customers return empty slices.
// Updates are atomic per customer: concurrent writers never overwrite each other's changes, and an
// error returned by the update function is passed back unchanged with nothing written.
type CartRepo interface {
	LoadItems(ctx context.Context, customerID string) ([]models.CartLineItem, error)
	UpdateItems(ctx context.Context, customerID string, update ItemsUpdate) ([]models.CartLineItem, error)

	LoadFavorites(ctx context.Context, customerID string) ([]models.RestaurantSummary, error)
	UpdateFavorites(ctx context.Context, customerID string, update FavoritesUpdate) ([]models.RestaurantSummary, error)
}
