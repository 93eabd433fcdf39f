package model

import (
	"math"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	MaxStock  int             `json:"maxStock"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartLine is the SQL row backing one CartItem of a cart session.
type CartLine struct {
	SessionID string          `gorm:"primaryKey;size:64"`
	ProductID int64           `gorm:"primaryKey;autoIncrement:false"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"size:128;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Image     string
	Quantity  int `gorm:"not null"`
	MaxStock  int `gorm:"not null"`
}

// Cart holds at most one item per product and keeps 1 <= Quantity <= MaxStock
// for every item once a mutation returns.
type Cart struct {
	Items []CartItem
}

func NewCart(items []CartItem) *Cart {
	c := &Cart{Items: items}
	c.Normalize()
	return c
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) index(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) Find(productID int64) (CartItem, bool) {
	i := c.index(productID)
	if i < 0 {
		return CartItem{}, false
	}
	return c.Items[i], true
}

// Add merges item into the cart. An existing line for the same product is
// incremented by item.Quantity and keeps its original snapshot. It reports
// whether the resulting quantity had to be clamped to MaxStock.
func (c *Cart) Add(item CartItem) (clamped bool) {
	if i := c.index(item.ProductID); i >= 0 {
		c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, item.Quantity)
		return clampQuantity(&c.Items[i])
	}
	clamped = clampQuantity(&item)
	c.Items = append(c.Items, item)
	return clamped
}

// ChangeQuantity applies delta to the line for productID. A result of zero or
// less removes the line.
func (c *Cart) ChangeQuantity(productID int64, delta int) (found, removed, clamped bool) {
	i := c.index(productID)
	if i < 0 {
		return false, false, false
	}
	c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, delta)
	if c.Items[i].Quantity <= 0 {
		c.Remove(productID)
		return true, true, false
	}
	return true, false, clampQuantity(&c.Items[i])
}

func (c *Cart) Remove(productID int64) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Clone returns a copy that shares no backing array with c.
func (c *Cart) Clone() []CartItem {
	if c.Items == nil {
		return nil
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}

// Normalize repairs stored carts: duplicate product lines are merged, lines
// that cannot hold a single unit are dropped and quantities are clamped.
func (c *Cart) Normalize() (changed bool) {
	merged := make([]CartItem, 0, len(c.Items))
	seen := make(map[int64]int, len(c.Items))
	for _, item := range c.Items {
		if i, ok := seen[item.ProductID]; ok {
			merged[i].Quantity = addQuantity(merged[i].Quantity, item.Quantity)
			changed = true
			continue
		}
		seen[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	kept := merged[:0]
	for _, item := range merged {
		if item.Quantity < 1 || item.MaxStock < 1 {
			changed = true
			continue
		}
		if clampQuantity(&item) {
			changed = true
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		kept = nil
	}
	c.Items = kept
	return changed
}

// addQuantity saturates at the int bounds instead of wrapping.
func addQuantity(q, n int) int {
	switch {
	case n > 0 && q > math.MaxInt-n:
		return math.MaxInt
	case n < 0 && q < math.MinInt-n:
		return math.MinInt
	}
	return q + n
}

func clampQuantity(item *CartItem) bool {
	if item.Quantity > item.MaxStock {
		item.Quantity = item.MaxStock
		return true
	}
	return false
}
