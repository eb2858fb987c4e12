package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// ProductRepository implements ports.ProductRepository on PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `SELECT id, name, description, price, stock, COALESCE(image_url, ''), salesperson_id
	FROM products`

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `INSERT INTO products (name, description, price, stock, image_url, salesperson_id)
	               VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.ImageURL, product.SalespersonID).
		Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, productColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.SalespersonID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, productColumns+` WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.SalespersonID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, product *domain.Product) error {
	const query = `UPDATE products SET name = $1, description = $2, price = $3, stock = $4,
	               image_url = $5, salesperson_id = $6 WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.ImageURL, product.SalespersonID, id)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
