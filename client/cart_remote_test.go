package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graniti123/stylehub/pricing"
)

// fakeCartServer implements the cart API contract in memory: merge on
// (product, size, color), summary derived on every response, idempotent
// removes. Every mutation answers with the full post-mutation cart state.
type fakeCartServer struct {
	products map[string]Product
	items    []CartItem
	fail     bool // when set, every request answers 500
}

func (f *fakeCartServer) payload() map[string]any {
	lines := make([]pricing.Line, 0, len(f.items))
	items := make([]CartItem, len(f.items))
	for i, item := range f.items {
		p := f.products[item.ProductID]
		item.Product = &p
		items[i] = item
		lines = append(lines, pricing.Line{UnitPrice: p.Price, Quantity: item.Quantity})
	}
	s := pricing.Calculate(lines)
	return map[string]any{
		"cart_items": items,
		"subtotal":   s.Subtotal,
		"shipping":   s.Shipping,
		"total":      s.Total,
	}
}

func (f *fakeCartServer) respond(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": f.payload()})
}

func (f *fakeCartServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.fail {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "boom"})
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/cart":
		var input struct {
			ProductID     string `json:"product_id"`
			SelectedSize  string `json:"selected_size"`
			SelectedColor string `json:"selected_color"`
			Quantity      int    `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		for i := range f.items {
			item := &f.items[i]
			if item.ProductID == input.ProductID && item.SelectedSize == input.SelectedSize && item.SelectedColor == input.SelectedColor {
				item.Quantity += input.Quantity
				f.respond(w)
				return
			}
		}
		f.items = append(f.items, CartItem{
			ID:            uuid.NewString(),
			ProductID:     input.ProductID,
			SelectedSize:  input.SelectedSize,
			SelectedColor: input.SelectedColor,
			Quantity:      input.Quantity,
		})
		f.respond(w)

	case r.Method == http.MethodGet:
		f.respond(w)

	case r.Method == http.MethodPut:
		itemID := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		var input struct {
			Quantity int `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		for i := range f.items {
			if f.items[i].ID == itemID {
				f.items[i].Quantity = input.Quantity
				f.respond(w)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Cart item not found"})

	case r.Method == http.MethodDelete && strings.Contains(r.URL.Path, "/item/"):
		itemID := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		for i := range f.items {
			if f.items[i].ID == itemID {
				f.items = append(f.items[:i], f.items[i+1:]...)
				break
			}
		}
		f.respond(w)

	case r.Method == http.MethodDelete:
		f.items = nil
		f.respond(w)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newRemoteCartFixture(t *testing.T) (*RemoteCart, *fakeCartServer) {
	t.Helper()
	fake := &fakeCartServer{products: map[string]Product{
		"p1": {ID: "p1", Name: "Elegantes Sommerkleid", Price: 89.99, Sizes: []string{"Einheitsgröße"}, Colors: []string{"Weiß"}},
		"p2": {ID: "p2", Name: "Herren Business Hemd", Price: 19.99, Sizes: []string{"S", "M", "L"}, Colors: []string{"Weiß", "Blau"}},
	}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return NewRemoteCart(New(srv.URL)), fake
}

func TestRemoteCartLoadEmpty(t *testing.T) {
	cart, _ := newRemoteCartFixture(t)

	require.NoError(t, cart.Load(context.Background()))
	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
}

func TestRemoteCartLoadTreatsNotFoundAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "cart not found"})
	}))
	defer srv.Close()

	cart := NewRemoteCart(New(srv.URL))
	require.NoError(t, cart.Load(context.Background()))
	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
}

func TestRemoteCartAddMergesSameSelection(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()
	product := fake.products["p1"]

	// One size: selecting nothing picks the only size; color defaults too.
	require.NoError(t, cart.AddItem(ctx, product, "", "", 1))
	require.NoError(t, cart.AddItem(ctx, product, "", "", 1))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Einheitsgröße", items[0].SelectedSize)
	assert.Equal(t, "Weiß", items[0].SelectedColor)
	assert.Equal(t, 2, items[0].Quantity)

	s := cart.Summary()
	assert.Equal(t, 179.98, s.Subtotal)
	assert.Equal(t, 0.0, s.Shipping)
	assert.Equal(t, 179.98, s.Total)
	assert.Equal(t, 2, s.ItemCount)
}

func TestRemoteCartDistinctSelectionsStaySeparate(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()
	product := fake.products["p2"]

	require.NoError(t, cart.AddItem(ctx, product, "M", "", 1))
	require.NoError(t, cart.AddItem(ctx, product, "L", "", 1))
	assert.Len(t, cart.Items(), 2)
}

func TestRemoteCartAddValidation(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()
	multiSize := fake.products["p2"]

	assert.ErrorIs(t, cart.AddItem(ctx, multiSize, "", "", 1), ErrSizeRequired)
	assert.ErrorIs(t, cart.AddItem(ctx, multiSize, "XXL", "", 1), ErrSizeUnavailable)
	assert.ErrorIs(t, cart.AddItem(ctx, multiSize, "M", "", 0), ErrQuantityInvalid)
	assert.ErrorIs(t, cart.AddItem(ctx, multiSize, "M", "", -3), ErrQuantityInvalid)

	// Nothing was sent for any of those.
	assert.Empty(t, fake.items)
	assert.Empty(t, cart.Items())
}

func TestRemoteCartUpdateQuantity(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, fake.products["p2"], "M", "", 2))
	itemID := cart.Items()[0].ID

	require.NoError(t, cart.UpdateItemQuantity(ctx, itemID, 5))
	assert.Equal(t, 5, cart.Items()[0].Quantity)
	assert.Equal(t, 99.95, cart.Summary().Subtotal)

	// Quantity zero behaves exactly like removal.
	require.NoError(t, cart.UpdateItemQuantity(ctx, itemID, 0))
	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
}

func TestRemoteCartUpdateUnknownItem(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, fake.products["p2"], "M", "", 1))
	before := cart.Items()

	err := cart.UpdateItemQuantity(ctx, "does-not-exist", 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, before, cart.Items())
}

func TestRemoteCartRemoveAbsentItemIsIdempotent(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, fake.products["p2"], "M", "", 1))
	before := cart.Items()

	require.NoError(t, cart.RemoveItem(ctx, "does-not-exist"))
	assert.Equal(t, before, cart.Items())
}

func TestRemoteCartClear(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, fake.products["p1"], "", "", 3))
	require.NoError(t, cart.Clear(ctx))

	assert.Empty(t, cart.Items())
	assert.Equal(t, pricing.Summary{}, cart.Summary())
	assert.Empty(t, fake.items)
}

func TestRemoteCartKeepsStateOnFailure(t *testing.T) {
	cart, fake := newRemoteCartFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, fake.products["p1"], "", "", 2))
	items := cart.Items()
	summary := cart.Summary()

	fake.fail = true
	assert.Error(t, cart.AddItem(ctx, fake.products["p2"], "M", "", 1))
	assert.Error(t, cart.UpdateItemQuantity(ctx, items[0].ID, 7))
	assert.Error(t, cart.RemoveItem(ctx, items[0].ID))
	assert.Error(t, cart.Clear(ctx))

	// The previously observed state is untouched.
	assert.Equal(t, items, cart.Items())
	assert.Equal(t, summary, cart.Summary())
}
