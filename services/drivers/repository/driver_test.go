package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/flashfood/internal/pkg/database"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = models.Coordinate{Latitude: 10.826411, Longitude: 106.617353}

func setupRepo(t *testing.T) (*DriverRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewDriverRepository(&database.RedisClient{Client: client}), mr
}

func TestDriverRepo_Snapshot(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	missing, err := repo.GetSnapshot(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	result := &models.NearbyDriversResult{
		Center:        center,
		CenterGeohash: "w3gv2h7",
		RadiusMeters:  1000,
		AllDrivers:    []models.DriverRecord{{ID: "DRI_1", Location: center}},
		NearbyDrivers: []models.DriverRecord{{ID: "DRI_1", Location: center}},
	}
	require.NoError(t, repo.SaveSnapshot(ctx, "session-1", result, time.Minute))

	got, err := repo.GetSnapshot(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, result, got)

	mr.FastForward(2 * time.Minute)
	expired, err := repo.GetSnapshot(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestDriverRepo_GetSnapshot_Corrupt(t *testing.T) {
	repo, mr := setupRepo(t)
	require.NoError(t, mr.Set("drivers:snapshot:bad", "{not json"))

	got, err := repo.GetSnapshot(context.Background(), "bad")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDriverRepo_StoreAndGetLocation(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	update := models.LocationUpdate{DriverID: "DRI_1", Location: center, CreatedAt: time.Unix(1700000000, 0)}
	require.NoError(t, repo.StoreLocation(ctx, update))

	assert.Equal(t, "1700000000", mr.HGet("driver:location:DRI_1", "ts"))
	assert.Equal(t, locationTTL, mr.TTL("driver:location:DRI_1"))

	got, err := repo.GetLocation(ctx, "DRI_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "DRI_1", got.ID)
	assert.InDelta(t, center.Latitude, got.Location.Latitude, 1e-9)
	assert.Equal(t, utils.EncodeLocation(center, utils.DefaultGeohashPrecision), got.Geohash)

	unknown, err := repo.GetLocation(ctx, "DRI_404")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestDriverRepo_FindWithinRadius(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	near := utils.OffsetByMeters(center, 400, 0)
	far := utils.OffsetByMeters(center, 5000, 0)
	require.NoError(t, repo.StoreLocation(ctx, models.LocationUpdate{DriverID: "DRI_near", Location: near, CreatedAt: time.Now()}))
	require.NoError(t, repo.StoreLocation(ctx, models.LocationUpdate{DriverID: "DRI_far", Location: far, CreatedAt: time.Now()}))

	got, err := repo.FindWithinRadius(ctx, center, 1000)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "DRI_near", got[0].ID)
	// Redis stores positions as 52-bit geohashes
	assert.InDelta(t, near.Latitude, got[0].Location.Latitude, 1e-5)
	assert.InDelta(t, near.Longitude, got[0].Location.Longitude, 1e-5)
}

func TestDriverRepo_FindWithinRadius_PrunesExpiredDrivers(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreLocation(ctx, models.LocationUpdate{DriverID: "DRI_gone", Location: center, CreatedAt: time.Now()}))
	mr.FastForward(2 * time.Hour)
	require.NoError(t, repo.StoreLocation(ctx, models.LocationUpdate{DriverID: "DRI_live", Location: center, CreatedAt: time.Now()}))

	gone, err := repo.GetLocation(ctx, "DRI_gone")
	require.NoError(t, err)
	assert.Nil(t, gone)

	got, err := repo.FindWithinRadius(ctx, center, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "DRI_live", got[0].ID)

	members, err := mr.ZMembers("drivers:geo")
	require.NoError(t, err)
	assert.Equal(t, []string{"DRI_live"}, members)
}

func TestDriverRepo_RemoveLocation(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreLocation(ctx, models.LocationUpdate{DriverID: "DRI_1", Location: center, CreatedAt: time.Now()}))
	require.NoError(t, repo.RemoveLocation(ctx, "DRI_1"))

	assert.False(t, mr.Exists("driver:location:DRI_1"))
	got, err := repo.FindWithinRadius(ctx, center, 1000)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Removing an unknown driver is a no-op
	assert.NoError(t, repo.RemoveLocation(ctx, "DRI_404"))
}
