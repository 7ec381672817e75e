package commands_test

import (
	"testing"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func menuItem(t *testing.T, id kernel.UUID, name string, priceCents int64, available bool) restaurant.MenuItem {
	t.Helper()
	item, err := restaurant.NewMenuItem(id, name, money(t, priceCents), "", available)
	require.NoError(t, err)
	return item
}

func openRestaurant(t *testing.T, id kernel.UUID, menu ...restaurant.MenuItem) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(id, "Momo House", true, true,
		money(t, 250), money(t, 500), menu)
	require.NoError(t, err)
	return r
}

func cartWithItem(t *testing.T, customerID, restaurantID, menuItemID kernel.UUID, priceCents int64, quantity int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	item, err := cart.NewLineItem(menuItemID, "Steam Momo", money(t, priceCents), "", quantity, nil, "")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(restaurantID, item, money(t, 250), money(t, 500)))
	return c
}
