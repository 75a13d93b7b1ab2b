package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProduct struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedProduct) func() error {
		return func() error {
			fetches++
			dest.ID = 42
			dest.Slug = "city-bike"
			return nil
		}
	}

	var first cachedProduct
	require.NoError(t, Aside(ctx, ProductKey("city-bike"), &first, ProductTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, uint(42), first.ID)

	var second cachedProduct
	require.NoError(t, Aside(ctx, ProductKey("city-bike"), &second, ProductTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read must be served from cache")
	assert.Equal(t, "city-bike", second.Slug)
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	setupMiniredis(t)

	var dest cachedProduct
	fetchErr := errors.New("db down")
	err := Aside(context.Background(), ProductKey("x"), &dest, time.Minute, func() error {
		return fetchErr
	})
	assert.ErrorIs(t, err, fetchErr)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest cachedProduct
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(context.Background(), ProductKey("y"), &dest, time.Minute, func() error {
			fetches++
			return nil
		}))
	}
	assert.Equal(t, 2, fetches, "without redis every read goes to the source")
}

func TestInvalidateProduct(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ProductKey("desk"), cachedProduct{ID: 1, Slug: "desk"}, time.Minute))
	require.NoError(t, SetJSON(ctx, FreshKey(), []cachedProduct{{ID: 1}}, time.Minute))

	InvalidateProduct(ctx, "desk")

	assert.False(t, mr.Exists(ProductKey("desk")))
	assert.False(t, mr.Exists(FreshKey()))
}
