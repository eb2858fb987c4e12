package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable item owned by a salesperson.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	ImageURL      string  `json:"image_url"`
	SalespersonID int     `json:"salesperson_id"`
}
