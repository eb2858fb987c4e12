package domain

import "errors"

var ErrCartItemNotFound = errors.New("cart item not found")

// CartItem is a single product line in a customer's cart. Name, price and
// image are denormalised at insert time; listings prefer the live product
// values when the product still exists.
type CartItem struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
}
