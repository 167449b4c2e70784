package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/graniti123/stylehub/pricing"
)

// Validation errors reported before any request is issued.
var (
	ErrQuantityInvalid = fmt.Errorf("quantity must be a positive integer")
	ErrSizeRequired    = fmt.Errorf("size selection required")
	ErrSizeUnavailable = fmt.Errorf("selected size is not offered for this product")
	ErrItemNotFound    = fmt.Errorf("cart item not found")
)

// defaultSize labels the only variant of products sold in one size.
const defaultSize = "Einheitsgröße"

// CartStore is the unified cart contract. RemoteCart mirrors the server,
// LocalCart keeps everything in memory; both apply the same merge,
// validation and defaulting rules.
//
// A store instance is owned by a single caller. Two mutations issued
// without awaiting the first race on completion order; await one mutation
// before issuing the next for deterministic results.
type CartStore interface {
	Load(ctx context.Context) error
	AddItem(ctx context.Context, product Product, size, color string, quantity int) error
	UpdateItemQuantity(ctx context.Context, itemID string, quantity int) error
	RemoveItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
	Items() []CartItem
	Summary() pricing.Summary
}

// resolveSelection applies the defaulting rules before an add: a product
// with exactly one size selects it implicitly, more than one size requires
// an explicit choice, and an unset color falls back to the product's first.
func resolveSelection(p Product, size, color string, quantity int) (string, string, error) {
	if quantity <= 0 {
		return "", "", ErrQuantityInvalid
	}

	switch {
	case size != "":
		if len(p.Sizes) > 0 && !containsString(p.Sizes, size) {
			return "", "", ErrSizeUnavailable
		}
	case len(p.Sizes) == 1:
		size = p.Sizes[0]
	case len(p.Sizes) == 0:
		size = defaultSize
	default:
		return "", "", ErrSizeRequired
	}

	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	return size, color, nil
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// RemoteCart is the server-synchronized cart store. Every mutation response
// carries the authoritative post-mutation cart state, which the store adopts
// directly; no follow-up read is issued. A failed call leaves the previously
// observed state untouched.
type RemoteCart struct {
	client  *Client
	items   []CartItem
	summary pricing.Summary
}

func NewRemoteCart(c *Client) *RemoteCart {
	return &RemoteCart{client: c}
}

type cartState struct {
	CartItems []CartItem `json:"cart_items"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Total     float64    `json:"total"`
}

func (rc *RemoteCart) adopt(data json.RawMessage) error {
	var state cartState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("stylehub: malformed cart payload: %w", err)
	}
	count := 0
	for _, item := range state.CartItems {
		count += item.Quantity
	}
	rc.items = state.CartItems
	rc.summary = pricing.Summary{
		Subtotal:  state.Subtotal,
		Shipping:  state.Shipping,
		Total:     state.Total,
		ItemCount: count,
	}
	return nil
}

// Load fetches the full cart. A cart that does not exist yet is an empty
// cart, not a failure.
func (rc *RemoteCart) Load(ctx context.Context) error {
	env, err := rc.client.do(ctx, http.MethodGet, "/cart/"+rc.client.SessionID(), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			rc.items = nil
			rc.summary = pricing.Summary{}
			return nil
		}
		return err
	}
	return rc.adopt(env.Data)
}

func (rc *RemoteCart) AddItem(ctx context.Context, product Product, size, color string, quantity int) error {
	size, color, err := resolveSelection(product, size, color, quantity)
	if err != nil {
		return err
	}

	body := map[string]any{
		"session_id":     rc.client.SessionID(),
		"product_id":     product.ID,
		"selected_size":  size,
		"selected_color": color,
		"quantity":       quantity,
	}
	env, err := rc.client.do(ctx, http.MethodPost, "/cart", nil, body)
	if err != nil {
		return err
	}
	return rc.adopt(env.Data)
}

func (rc *RemoteCart) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return rc.RemoveItem(ctx, itemID)
	}

	path := "/cart/" + rc.client.SessionID() + "/item/" + itemID
	env, err := rc.client.do(ctx, http.MethodPut, path, nil, map[string]int{"quantity": quantity})
	if err != nil {
		if IsNotFound(err) {
			return ErrItemNotFound
		}
		return err
	}
	return rc.adopt(env.Data)
}

// RemoveItem deletes the line if present; removing an absent line succeeds.
func (rc *RemoteCart) RemoveItem(ctx context.Context, itemID string) error {
	path := "/cart/" + rc.client.SessionID() + "/item/" + itemID
	env, err := rc.client.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return rc.adopt(env.Data)
}

func (rc *RemoteCart) Clear(ctx context.Context) error {
	_, err := rc.client.do(ctx, http.MethodDelete, "/cart/"+rc.client.SessionID(), nil, nil)
	if err != nil {
		return err
	}
	rc.items = nil
	rc.summary = pricing.Summary{}
	return nil
}

func (rc *RemoteCart) Items() []CartItem {
	items := make([]CartItem, len(rc.items))
	copy(items, rc.items)
	return items
}

func (rc *RemoteCart) Summary() pricing.Summary {
	return rc.summary
}

var _ CartStore = (*RemoteCart)(nil)
