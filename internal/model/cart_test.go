package model

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id int64, price int64, qty, maxStock int) CartItem {
	return CartItem{
		ProductID: id,
		Name:      "fish",
		Price:     decimal.NewFromInt(price),
		Quantity:  qty,
		MaxStock:  maxStock,
	}
}

func assertCartInvariants(t *testing.T, c *Cart) {
	t.Helper()

	seen := map[int64]bool{}
	total := decimal.Zero
	for _, it := range c.Items {
		assert.GreaterOrEqual(t, it.Quantity, 1, "product %d", it.ProductID)
		assert.LessOrEqual(t, it.Quantity, it.MaxStock, "product %d", it.ProductID)
		assert.False(t, seen[it.ProductID], "duplicate product %d", it.ProductID)
		seen[it.ProductID] = true
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, total.Equal(c.Total()), "total %s, want %s", c.Total(), total)
}

func TestCartRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	stock := map[int64]int{1: 15, 2: 8, 3: 12, 4: 5, 5: 1}
	prices := map[int64]int64{1: 200, 2: 150, 3: 180, 4: 300, 5: 99}

	c := NewCart(nil)
	for step := 0; step < 2000; step++ {
		id := int64(rng.IntN(5) + 1)
		switch rng.IntN(3) {
		case 0:
			qty := rng.IntN(20) + 1
			if rng.IntN(10) == 0 {
				qty = math.MaxInt
			}
			c.Add(item(id, prices[id], qty, stock[id]))
		case 1:
			delta := rng.IntN(41) - 20
			switch rng.IntN(20) {
			case 0:
				delta = math.MaxInt
			case 1:
				delta = math.MinInt
			}
			c.ChangeQuantity(id, delta)
		case 2:
			c.Remove(id)
		}
		assertCartInvariants(t, c)
	}
}

func TestCartChangeQuantityClampsToStock(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 2, 15)})

	found, removed, clamped := c.ChangeQuantity(1, 20)

	assert.True(t, found)
	assert.False(t, removed)
	assert.True(t, clamped)
	got, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, 15, got.Quantity)
	assert.True(t, decimal.NewFromInt(3000).Equal(c.Total()))
}

func TestCartChangeQuantityRemovesAtZero(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 2, 15), item(2, 150, 1, 8)})

	_, removed, _ := c.ChangeQuantity(1, -2)

	assert.True(t, removed)
	_, ok := c.Find(1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Count())
}

func TestCartChangeQuantityUnknownProduct(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 2, 15)})

	found, _, _ := c.ChangeQuantity(9, 3)

	assert.False(t, found)
	assert.Equal(t, 2, c.Count())
}

func TestCartAddMergesAndClamps(t *testing.T) {
	c := NewCart(nil)

	assert.False(t, c.Add(item(1, 200, 10, 15)))
	assert.True(t, c.Add(item(1, 200, 10, 15)))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 15, c.Items[0].Quantity)
}

func TestCartAddKeepsFirstSnapshot(t *testing.T) {
	c := NewCart(nil)
	c.Add(item(1, 200, 1, 15))

	later := item(1, 250, 1, 3)
	later.Name = "renamed"
	c.Add(later)

	got, _ := c.Find(1)
	assert.Equal(t, "fish", got.Name)
	assert.True(t, decimal.NewFromInt(200).Equal(got.Price))
	assert.Equal(t, 15, got.MaxStock)
	assert.Equal(t, 2, got.Quantity)
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 1, 15)})

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.True(t, c.Empty())
}

func TestNewCartNormalizesStoredItems(t *testing.T) {
	c := NewCart([]CartItem{
		item(1, 200, 10, 15),
		item(1, 200, 10, 15),
		item(2, 150, 0, 8),
		item(3, 180, 4, 0),
		item(4, 300, 9, 5),
	})

	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(1), c.Items[0].ProductID)
	assert.Equal(t, 15, c.Items[0].Quantity)
	assert.Equal(t, int64(4), c.Items[1].ProductID)
	assert.Equal(t, 5, c.Items[1].Quantity)
}

func TestCartCloneIsIndependent(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 1, 15)})

	items := c.Clone()
	c.ChangeQuantity(1, 4)

	assert.Equal(t, 1, items[0].Quantity)
	assert.Nil(t, NewCart(nil).Clone())
}

func TestCartTotalAndCount(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, 1, 15), item(2, 150, 2, 8)})

	assert.True(t, decimal.NewFromInt(500).Equal(c.Total()))
	assert.Equal(t, 3, c.Count())

	c.Clear()
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.Count())
}

func TestCartQuantityArithmeticSaturates(t *testing.T) {
	tests := []struct {
		name        string
		apply       func(c *Cart) bool
		wantQty     int
		wantClamped bool
	}{
		{
			name:        "add max int to existing line",
			apply:       func(c *Cart) bool { return c.Add(item(1, 200, math.MaxInt, 15)) },
			wantQty:     15,
			wantClamped: true,
		},
		{
			name: "increase by max int",
			apply: func(c *Cart) bool {
				_, _, clamped := c.ChangeQuantity(1, math.MaxInt)
				return clamped
			},
			wantQty:     15,
			wantClamped: true,
		},
		{
			name: "decrease by min int",
			apply: func(c *Cart) bool {
				_, _, clamped := c.ChangeQuantity(1, math.MinInt)
				return clamped
			},
			wantQty: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart([]CartItem{item(1, 200, 2, 15)})

			assert.Equal(t, tt.wantClamped, tt.apply(c))

			got, ok := c.Find(1)
			if tt.wantQty == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantQty, got.Quantity)
			assert.True(t, decimal.NewFromInt(3000).Equal(c.Total()))
			assertCartInvariants(t, c)
		})
	}
}

func TestNewCartMergesHugeDuplicates(t *testing.T) {
	c := NewCart([]CartItem{item(1, 200, math.MaxInt, 15), item(1, 200, math.MaxInt, 15)})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 15, c.Items[0].Quantity)
}
