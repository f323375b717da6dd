package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/flashfood/internal/pkg/constants"
	"github.com/piresc/flashfood/internal/pkg/database"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
)

// CartRepo implements the cart repository on Redis. Each customer's cart and favourites
// are stored as one JSON document without expiry; an empty cart has no key.
type CartRepo struct {
	redisClient *database.RedisClient
}

// NewCartRepository creates a new cart repository
func NewCartRepository(redisClient *database.RedisClient) *CartRepo {
	return &CartRepo{redisClient: redisClient}
}

// LoadItems returns the customer's cart lines
func (r *CartRepo) LoadItems(ctx context.Context, customerID string) ([]models.CartLineItem, error) {
	items := []models.CartLineItem{}
	if _, err := r.redisClient.GetJSON(ctx, fmt.Sprintf(constants.KeyCartItems, customerID), &items); err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	return items, nil
}

// UpdateItems applies update to the stored cart lines and writes the result back
func (r *CartRepo) UpdateItems(ctx context.Context, customerID string, update cart.ItemsUpdate) ([]models.CartLineItem, error) {
	var (
		updated   []models.CartLineItem
		updateErr error
	)
	err := r.redisClient.UpdateJSON(ctx, fmt.Sprintf(constants.KeyCartItems, customerID), func(current []byte) (interface{}, error) {
		items := []models.CartLineItem{}
		if err := decode(current, &items); err != nil {
			return nil, err
		}
		updated, updateErr = update(items)
		if updateErr != nil {
			return nil, updateErr
		}
		if len(updated) == 0 {
			updated = []models.CartLineItem{}
			return nil, nil
		}
		return updated, nil
	})
	if updateErr != nil {
		return nil, updateErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cart items: %w", err)
	}
	return updated, nil
}

// LoadFavorites returns the customer's favourite restaurants
func (r *CartRepo) LoadFavorites(ctx context.Context, customerID string) ([]models.RestaurantSummary, error) {
	favorites := []models.RestaurantSummary{}
	if _, err := r.redisClient.GetJSON(ctx, fmt.Sprintf(constants.KeyFavoriteRestaurants, customerID), &favorites); err != nil {
		return nil, fmt.Errorf("failed to load favorite restaurants: %w", err)
	}
	return favorites, nil
}

// UpdateFavorites applies update to the stored favourites and writes the result back
func (r *CartRepo) UpdateFavorites(ctx context.Context, customerID string, update cart.FavoritesUpdate) ([]models.RestaurantSummary, error) {
	var (
		updated   []models.RestaurantSummary
		updateErr error
	)
	err := r.redisClient.UpdateJSON(ctx, fmt.Sprintf(constants.KeyFavoriteRestaurants, customerID), func(current []byte) (interface{}, error) {
		favorites := []models.RestaurantSummary{}
		if err := decode(current, &favorites); err != nil {
			return nil, err
		}
		updated, updateErr = update(favorites)
		if updateErr != nil {
			return nil, updateErr
		}
		if len(updated) == 0 {
			updated = []models.RestaurantSummary{}
			return nil, nil
		}
		return updated, nil
	})
	if updateErr != nil {
		return nil, updateErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update favorite restaurants: %w", err)
	}
	return updated, nil
}

// decode leaves dest untouched for a missing document
func decode(data []byte, dest interface{}) error {
	if data == nil {
		return nil
	}
	return json.Unmarshal(data, dest)
}
