package kernel_test

import (
	"testing"

	"foodsewa/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1250)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
		assert.False(t, m.IsZero())
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.True(t, m.IsEqual(kernel.MoneyZero()))
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNegative, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	money := func(cents int64) kernel.Money {
		m, err := kernel.NewMoneyFromCents(cents)
		require.NoError(t, err)
		return m
	}

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, int64(1500), money(1000).Add(money(500)).Cents())
	})

	t.Run("Sub succeeds when result is non-negative", func(t *testing.T) {
		result, err := money(1000).Sub(money(250))

		require.NoError(t, err)
		assert.Equal(t, int64(750), result.Cents())
	})

	t.Run("Sub fails on underflow", func(t *testing.T) {
		_, err := money(100).Sub(money(200))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneySubtractionUnderflow, err)
	})

	t.Run("SubFloor clamps at zero", func(t *testing.T) {
		assert.True(t, money(100).SubFloor(money(200)).IsZero())
		assert.Equal(t, int64(50), money(100).SubFloor(money(50)).Cents())
	})

	t.Run("MulQty", func(t *testing.T) {
		// price 10.00, quantity 2 -> 20.00
		assert.Equal(t, int64(2000), money(1000).MulQty(2).Cents())
		assert.True(t, money(1000).MulQty(0).IsZero())
		assert.True(t, money(1000).MulQty(-3).IsZero())
	})

	t.Run("LessThan", func(t *testing.T) {
		assert.True(t, money(500).LessThan(money(501)))
		assert.False(t, money(501).LessThan(money(500)))
		assert.False(t, money(500).LessThan(money(500)))
	})
}

func TestMoney_String(t *testing.T) {
	cases := map[int64]string{
		0:     "0.00",
		5:     "0.05",
		250:   "2.50",
		1000:  "10.00",
		12345: "123.45",
	}

	for cents, expected := range cases {
		m, err := kernel.NewMoneyFromCents(cents)
		require.NoError(t, err)
		assert.Equal(t, expected, m.String())
	}
}
