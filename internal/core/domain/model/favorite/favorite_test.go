package favorite_test

import (
	"testing"
	"time"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dishSnapshot(t *testing.T) favorite.DishSnapshot {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(850)
	require.NoError(t, err)
	return favorite.DishSnapshot{Name: "Chicken Momo", Price: price, ImageURL: "momo.jpg"}
}

func TestNewFavorite(t *testing.T) {
	t.Run("creates an active restaurant favorite", func(t *testing.T) {
		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{})

		require.NoError(t, err)
		assert.True(t, f.IsActive())
		assert.Equal(t, favorite.KindRestaurant, f.Kind())
		assert.Nil(t, f.MenuItemID())
		assert.Empty(t, f.Dish().Name)
	})

	t.Run("creates an active dish favorite with snapshot", func(t *testing.T) {
		menuItemID := kernel.NewUUID()

		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindDish, &menuItemID, dishSnapshot(t))

		require.NoError(t, err)
		require.NotNil(t, f.MenuItemID())
		assert.True(t, f.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, "Chicken Momo", f.Dish().Name)
	})

	t.Run("dish favorite requires a menu item id", func(t *testing.T) {
		_, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindDish, nil, dishSnapshot(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restaurant favorite must not carry a menu item id", func(t *testing.T) {
		menuItemID := kernel.NewUUID()

		_, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, &menuItemID, favorite.DishSnapshot{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an invalid kind", func(t *testing.T) {
		_, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindUnknown, nil, favorite.DishSnapshot{})

		require.Error(t, err)
	})
}

func TestFavorite_Deactivate(t *testing.T) {
	t.Run("active favorite becomes inactive", func(t *testing.T) {
		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{})
		require.NoError(t, err)

		require.NoError(t, f.Deactivate())

		assert.False(t, f.IsActive())
		assert.Equal(t, favorite.StateInactive, f.State())
	})

	t.Run("deactivating twice fails", func(t *testing.T) {
		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{})
		require.NoError(t, err)

		require.NoError(t, f.Deactivate())
		require.Error(t, f.Deactivate())
	})
}

func TestFavorite_Reactivate(t *testing.T) {
	t.Run("inactive dish favorite reactivates with a fresh snapshot", func(t *testing.T) {
		menuItemID := kernel.NewUUID()
		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindDish, &menuItemID, dishSnapshot(t))
		require.NoError(t, err)
		require.NoError(t, f.Deactivate())
		previousAddedAt := f.AddedAt()

		newPrice, err := kernel.NewMoneyFromCents(950)
		require.NoError(t, err)
		err = f.Reactivate(favorite.DishSnapshot{Name: "Chicken Momo", Price: newPrice})

		require.NoError(t, err)
		assert.True(t, f.IsActive())
		assert.Equal(t, int64(950), f.Dish().Price.Cents())
		assert.False(t, f.AddedAt().Before(previousAddedAt))
	})

	t.Run("reactivating an active favorite fails", func(t *testing.T) {
		f, err := favorite.NewFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{})
		require.NoError(t, err)

		require.Error(t, f.Reactivate(favorite.DishSnapshot{}))
	})
}

func TestRestoreFavorite(t *testing.T) {
	t.Run("restores persisted state and timestamp", func(t *testing.T) {
		addedAt := time.Now().UTC().Add(-24 * time.Hour)

		f, err := favorite.RestoreFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{},
			favorite.StateInactive, addedAt)

		require.NoError(t, err)
		assert.False(t, f.IsActive())
		assert.Equal(t, addedAt, f.AddedAt())
	})

	t.Run("rejects an invalid state", func(t *testing.T) {
		_, err := favorite.RestoreFavorite(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			favorite.KindRestaurant, nil, favorite.DishSnapshot{},
			favorite.StateUnknown, time.Now())

		require.Error(t, err)
	})
}

func TestKind(t *testing.T) {
	t.Run("parses wire strings", func(t *testing.T) {
		k, err := favorite.KindFromString("restaurant")
		require.NoError(t, err)
		assert.Equal(t, favorite.KindRestaurant, k)

		k, err = favorite.KindFromString("dish")
		require.NoError(t, err)
		assert.Equal(t, favorite.KindDish, k)
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := favorite.KindFromString("cuisine")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		assert.Equal(t, "restaurant", favorite.KindRestaurant.String())
		assert.Equal(t, "dish", favorite.KindDish.String())
		assert.Equal(t, "unknown", favorite.KindUnknown.String())
	})
}

func TestState(t *testing.T) {
	t.Run("valid transitions", func(t *testing.T) {
		inactive, err := favorite.StateActive.Deactivate()
		require.NoError(t, err)
		assert.Equal(t, favorite.StateInactive, inactive)

		active, err := favorite.StateInactive.Reactivate()
		require.NoError(t, err)
		assert.Equal(t, favorite.StateActive, active)
	})

	t.Run("invalid transitions", func(t *testing.T) {
		_, err := favorite.StateInactive.Deactivate()
		require.Error(t, err)

		_, err = favorite.StateActive.Reactivate()
		require.Error(t, err)
	})

	t.Run("unknown state fails validation", func(t *testing.T) {
		require.Error(t, favorite.StateUnknown.Validate())
		require.NoError(t, favorite.StateActive.Validate())
		require.NoError(t, favorite.StateInactive.Validate())
	})
}
