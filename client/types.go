package client

// Product is the catalog item shape served by the StyleHub API. Products are
// read-only from the storefront's point of view.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	IsOnSale      bool     `json:"is_on_sale"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// CartItem is one line of the session's cart.
type CartItem struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"product_id"`
	SelectedSize  string   `json:"selected_size"`
	SelectedColor string   `json:"selected_color"`
	Quantity      int      `json:"quantity"`
	Product       *Product `json:"product,omitempty"`
}
