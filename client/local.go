package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/graniti123/stylehub/pricing"
)

// LocalCart keeps the cart entirely in memory, for use without a backend
// (demo mode, tests). It applies the same merge and defaulting rules as
// RemoteCart and re-derives the summary after every mutation.
type LocalCart struct {
	items   []CartItem
	summary pricing.Summary
}

func NewLocalCart() *LocalCart {
	return &LocalCart{}
}

func (lc *LocalCart) Load(ctx context.Context) error {
	lc.recalc()
	return nil
}

func (lc *LocalCart) AddItem(ctx context.Context, product Product, size, color string, quantity int) error {
	size, color, err := resolveSelection(product, size, color, quantity)
	if err != nil {
		return err
	}

	for i := range lc.items {
		item := &lc.items[i]
		if item.ProductID == product.ID && item.SelectedSize == size && item.SelectedColor == color {
			item.Quantity += quantity
			lc.recalc()
			return nil
		}
	}

	p := product
	lc.items = append(lc.items, CartItem{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      quantity,
		Product:       &p,
	})
	lc.recalc()
	return nil
}

func (lc *LocalCart) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return lc.RemoveItem(ctx, itemID)
	}

	for i := range lc.items {
		if lc.items[i].ID == itemID {
			lc.items[i].Quantity = quantity
			lc.recalc()
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem deletes the line if present. Removing an absent line changes
// nothing and succeeds.
func (lc *LocalCart) RemoveItem(ctx context.Context, itemID string) error {
	for i := range lc.items {
		if lc.items[i].ID == itemID {
			lc.items = append(lc.items[:i], lc.items[i+1:]...)
			break
		}
	}
	lc.recalc()
	return nil
}

func (lc *LocalCart) Clear(ctx context.Context) error {
	lc.items = nil
	lc.summary = pricing.Summary{}
	return nil
}

func (lc *LocalCart) Items() []CartItem {
	items := make([]CartItem, len(lc.items))
	copy(items, lc.items)
	return items
}

func (lc *LocalCart) Summary() pricing.Summary {
	return lc.summary
}

func (lc *LocalCart) recalc() {
	lines := make([]pricing.Line, 0, len(lc.items))
	for _, item := range lc.items {
		lines = append(lines, pricing.Line{UnitPrice: item.Product.Price, Quantity: item.Quantity})
	}
	lc.summary = pricing.Calculate(lines)
}

var _ CartStore = (*LocalCart)(nil)
