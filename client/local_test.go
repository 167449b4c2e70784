package client

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graniti123/stylehub/pricing"
)

var (
	oneSizeBag = Product{
		ID:     "p-bag",
		Name:   "Designer Handtasche",
		Price:  149.99,
		Sizes:  []string{"Einheitsgröße"},
		Colors: []string{"Grün", "Schwarz"},
	}
	shirt = Product{
		ID:     "p-shirt",
		Name:   "Herren Business Hemd",
		Price:  65.99,
		Sizes:  []string{"S", "M", "L", "XL"},
		Colors: []string{"Weiß", "Blau"},
	}
)

func TestLocalCartStartsEmpty(t *testing.T) {
	cart := NewLocalCart()
	require.NoError(t, cart.Load(context.Background()))
	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
}

func TestLocalCartMergesRepeatedAdds(t *testing.T) {
	cart := NewLocalCart()
	ctx := context.Background()

	// Any number of adds for the same (product, size, color) stays one line
	// whose quantity is the sum of the requested quantities.
	rng := rand.New(rand.NewSource(7))
	wantQty := 0
	for i := 0; i < 20; i++ {
		q := rng.Intn(4) + 1
		wantQty += q
		require.NoError(t, cart.AddItem(ctx, shirt, "M", "Blau", q))
	}

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, wantQty, items[0].Quantity)
	assert.Equal(t, wantQty, cart.Summary().ItemCount)
}

func TestLocalCartDefaultsSizeAndColor(t *testing.T) {
	cart := NewLocalCart()
	require.NoError(t, cart.AddItem(context.Background(), oneSizeBag, "", "", 1))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Einheitsgröße", items[0].SelectedSize)
	assert.Equal(t, "Grün", items[0].SelectedColor)
}

func TestLocalCartRequiresSizeChoice(t *testing.T) {
	cart := NewLocalCart()
	err := cart.AddItem(context.Background(), shirt, "", "", 1)
	assert.ErrorIs(t, err, ErrSizeRequired)
	assert.Empty(t, cart.Items())
}

func TestLocalCartSeparateLinesPerSelection(t *testing.T) {
	cart := NewLocalCart()
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, shirt, "M", "Weiß", 1))
	require.NoError(t, cart.AddItem(ctx, shirt, "M", "Blau", 1))
	require.NoError(t, cart.AddItem(ctx, shirt, "L", "Weiß", 1))

	assert.Len(t, cart.Items(), 3)
	assert.Equal(t, 3, cart.Summary().ItemCount)
}

func TestLocalCartUpdateZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	update := NewLocalCart()
	remove := NewLocalCart()
	for _, cart := range []*LocalCart{update, remove} {
		require.NoError(t, cart.AddItem(ctx, shirt, "M", "", 2))
		require.NoError(t, cart.AddItem(ctx, oneSizeBag, "", "", 1))
	}

	targetUpdate := update.Items()[0].ID
	targetRemove := remove.Items()[0].ID

	require.NoError(t, update.UpdateItemQuantity(ctx, targetUpdate, 0))
	require.NoError(t, remove.RemoveItem(ctx, targetRemove))

	assert.Equal(t, len(remove.Items()), len(update.Items()))
	assert.Equal(t, remove.Summary(), update.Summary())
}

func TestLocalCartUpdateUnknownItem(t *testing.T) {
	cart := NewLocalCart()
	err := cart.UpdateItemQuantity(context.Background(), "missing", 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLocalCartRemoveAbsentIsNoOp(t *testing.T) {
	cart := NewLocalCart()
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, shirt, "M", "", 2))
	before := cart.Items()

	require.NoError(t, cart.RemoveItem(ctx, "missing"))
	assert.Equal(t, before, cart.Items())
}

func TestLocalCartSummaryTracksMutations(t *testing.T) {
	cart := NewLocalCart()
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, shirt, "M", "", 1))
	s := cart.Summary()
	assert.Equal(t, 65.99, s.Subtotal)
	assert.Equal(t, 0.0, s.Shipping)
	assert.Equal(t, 65.99, s.Total)

	itemID := cart.Items()[0].ID
	require.NoError(t, cart.UpdateItemQuantity(ctx, itemID, 3))
	assert.Equal(t, 197.97, cart.Summary().Subtotal)

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
}

func TestLocalCartBelowThresholdPaysShipping(t *testing.T) {
	cart := NewLocalCart()
	cheap := Product{ID: "p-cheap", Name: "Socken", Price: 9.99, Sizes: []string{"Einheitsgröße"}, Colors: []string{"Schwarz"}}

	require.NoError(t, cart.AddItem(context.Background(), cheap, "", "", 2))
	s := cart.Summary()
	assert.Equal(t, 19.98, s.Subtotal)
	assert.Equal(t, pricing.FlatShippingFee, s.Shipping)
	assert.Equal(t, 24.97, s.Total)
}
