package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// Filters enumerates the recognized product query options; the zero value
// means "no restriction" for every field.
type Filters struct {
	Category string
	Sale     bool
	Search   string
	Limit    int
	Offset   int
}

func (f Filters) values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Sale {
		v.Set("sale", "true")
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return v
}

// ProductList is a catalog query result. Degraded marks that the backend was
// unavailable and the fixed sample catalog was substituted.
type ProductList struct {
	Products []Product
	Total    int
	Degraded bool
	Notice   string
}

const degradedNotice = "API nicht verfügbar - Fallback-Daten angezeigt"

// GetProducts loads the product listing for the given filters. Transport and
// server failures degrade to the sample catalog with the category and sale
// filters applied locally; client-side errors (invalid filters) are returned
// as-is.
func (c *Client) GetProducts(ctx context.Context, f Filters) (ProductList, error) {
	env, err := c.do(ctx, http.MethodGet, "/products", f.values(), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return ProductList{}, err
		}
		return sampleFallback(f), nil
	}
	if !env.Success {
		return sampleFallback(f), nil
	}

	var data struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return sampleFallback(f), nil
	}
	return ProductList{Products: data.Products, Total: env.Total}, nil
}

func sampleFallback(f Filters) ProductList {
	products := make([]Product, 0, len(SampleCatalog))
	for _, p := range SampleCatalog {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Sale && !p.IsOnSale {
			continue
		}
		products = append(products, p)
	}
	return ProductList{
		Products: products,
		Total:    len(products),
		Degraded: true,
		Notice:   degradedNotice,
	}
}

// GetProduct loads a single product by id. There is no sample fallback for
// detail views; the caller gets the error.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return Product{}, err
	}
	var data struct {
		Product Product `json:"product"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Product{}, err
	}
	return data.Product, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	env, err := c.do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var data struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}
