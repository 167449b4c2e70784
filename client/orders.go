package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type OrderItem struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      int     `json:"quantity"`
	PriceAtTime   float64 `json:"price_at_time"`
}

type Order struct {
	ID           string       `json:"id"`
	SessionID    string       `json:"session_id"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  float64      `json:"total_amount"`
	ShippingCost float64      `json:"shipping_cost"`
	Customer     CustomerInfo `json:"customer_info"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CreateOrder turns the session's cart into an order. The server clears the
// cart, so callers holding a RemoteCart should Load it afterwards.
func (c *Client) CreateOrder(ctx context.Context, customer CustomerInfo) (Order, error) {
	body := map[string]any{
		"session_id":    c.SessionID(),
		"customer_info": customer,
	}
	env, err := c.do(ctx, http.MethodPost, "/orders", nil, body)
	if err != nil {
		return Order{}, err
	}
	var data struct {
		Order Order `json:"order"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Order{}, err
	}
	return data.Order, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return Order{}, err
	}
	var data struct {
		Order Order `json:"order"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Order{}, err
	}
	return data.Order, nil
}

// GetOrders lists the orders placed by this session, newest first.
func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	query := url.Values{"session_id": {c.SessionID()}}
	env, err := c.do(ctx, http.MethodGet, "/orders", query, nil)
	if err != nil {
		return nil, err
	}
	var data struct {
		Orders []Order `json:"orders"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return data.Orders, nil
}
