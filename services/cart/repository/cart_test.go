package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/flashfood/internal/pkg/database"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*CartRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartRepository(&database.RedisClient{Client: client}), mr
}

func replaceWith[T any](next []T) func([]T) ([]T, error) {
	return func([]T) ([]T, error) { return next, nil }
}

func TestCartRepo_Items(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	empty, err := repo.LoadItems(ctx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	items := []models.CartLineItem{
		{
			ID:         "line-1",
			ItemID:     "pho",
			Name:       "Pho",
			Restaurant: models.RestaurantSummary{ID: "r1", Name: "Pho 24"},
			Variants:   []models.VariantSelection{{VariantID: "v1", VariantName: "Large", UnitPriceAtAdd: 5, Quantity: 3}},
		},
	}
	saved, err := repo.UpdateItems(ctx, "c1", func(current []models.CartLineItem) ([]models.CartLineItem, error) {
		assert.Empty(t, current)
		return items, nil
	})
	require.NoError(t, err)
	assert.Equal(t, items, saved)
	assert.True(t, mr.Exists("cart:items:c1"))
	assert.Zero(t, mr.TTL("cart:items:c1"))

	loaded, err := repo.LoadItems(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "r1", loaded[0].RestaurantID())
	assert.Equal(t, 3, loaded[0].Variants[0].Quantity)
	assert.Equal(t, 5.0, loaded[0].Variants[0].UnitPriceAtAdd)

	cleared, err := repo.UpdateItems(ctx, "c1", replaceWith[models.CartLineItem](nil))
	require.NoError(t, err)
	assert.NotNil(t, cleared)
	assert.Empty(t, cleared)
	assert.False(t, mr.Exists("cart:items:c1"))
}

func TestCartRepo_UpdateItems_ErrorWritesNothing(t *testing.T) {
	repo, mr := setupRepo(t)
	require.NoError(t, mr.Set("cart:items:c1", `[{"id":"line-1"}]`))

	notFound := errors.New("cart item not found")
	_, err := repo.UpdateItems(context.Background(), "c1", func([]models.CartLineItem) ([]models.CartLineItem, error) {
		return nil, notFound
	})

	assert.Equal(t, notFound, err)
	raw, err := mr.Get("cart:items:c1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"line-1"}]`, raw)
}

func TestCartRepo_UpdateItems_ConcurrentWritersKeepEveryLine(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpdateItems(ctx, "c1", func(items []models.CartLineItem) ([]models.CartLineItem, error) {
				return append(items, models.CartLineItem{ID: fmt.Sprintf("line-%d", i)}), nil
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	items, err := repo.LoadItems(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, writers)

	seen := make(map[string]bool, writers)
	for _, item := range items {
		seen[item.ID] = true
	}
	assert.Len(t, seen, writers)
}

func TestCartRepo_CorruptData(t *testing.T) {
	repo, mr := setupRepo(t)
	require.NoError(t, mr.Set("cart:items:c1", "{not json"))

	_, err := repo.LoadItems(context.Background(), "c1")
	assert.Error(t, err)

	_, err = repo.UpdateItems(context.Background(), "c1", replaceWith[models.CartLineItem](nil))
	assert.Error(t, err)
	assert.True(t, mr.Exists("cart:items:c1"))
}

func TestCartRepo_Favorites(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	favorites, err := repo.LoadFavorites(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	want := []models.RestaurantSummary{{ID: "r1", Name: "Pho 24"}, {ID: "r2", Name: "Banh Mi"}}
	_, err = repo.UpdateFavorites(ctx, "c1", replaceWith(want))
	require.NoError(t, err)

	favorites, err = repo.LoadFavorites(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, want, favorites)

	_, err = repo.UpdateFavorites(ctx, "c1", replaceWith[models.RestaurantSummary](nil))
	require.NoError(t, err)
	assert.False(t, mr.Exists("cart:favorites:c1"))
}

func TestCartRepo_RedisDown(t *testing.T) {
	repo, mr := setupRepo(t)
	mr.Close()

	_, err := repo.LoadItems(context.Background(), "c1")
	assert.Error(t, err)
	_, err = repo.UpdateFavorites(context.Background(), "c1", replaceWith[models.RestaurantSummary](nil))
	assert.Error(t, err)
}
