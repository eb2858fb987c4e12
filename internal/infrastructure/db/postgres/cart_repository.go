package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CartRepository implements ports.CartRepository on PostgreSQL.
type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) FindItem(ctx context.Context, customerID, productID int) (*domain.CartItem, error) {
	const query = `SELECT id, customer_id, product_id, quantity, name, price, COALESCE(image_url, '')
	               FROM cart WHERE customer_id = $1 AND product_id = $2`

	var item domain.CartItem
	err := r.pool.QueryRow(ctx, query, customerID, productID).
		Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity,
			&item.Name, &item.Price, &item.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) error {
	const query = `INSERT INTO cart (customer_id, product_id, quantity, name, price, image_url)
	               VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		item.CustomerID, item.ProductID, item.Quantity,
		item.Name, item.Price, item.ImageURL).
		Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByCustomer returns the customer's cart lines, preferring the live
// product name/price/image over the values denormalised at insert time.
func (r *CartRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.CartItem, error) {
	const query = `SELECT c.id, c.customer_id, c.product_id, c.quantity,
	                      COALESCE(p.name, c.name),
	                      COALESCE(p.price, c.price),
	                      COALESCE(p.image_url, c.image_url, '')
	               FROM cart c
	               LEFT JOIN products p ON c.product_id = p.id
	               WHERE c.customer_id = $1
	               ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity,
			&item.Name, &item.Price, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id, quantity int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE cart SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}
