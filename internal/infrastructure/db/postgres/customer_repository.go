package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CustomerRepository implements ports.CustomerRepository on PostgreSQL.
// The password column stores the bcrypt hash of portal-enabled customers.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const query = `SELECT id, name, email, phone, address, portal_access, COALESCE(password, '')
	               FROM customers WHERE email = $1`

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.PortalAccess, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const query = `SELECT id, name, email, phone, address, portal_access FROM customers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.PortalAccess); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `INSERT INTO customers (name, email, phone, address, password, portal_access)
	               VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.PasswordHash, customer.PortalAccess).
		Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update changes customer profile fields; the stored password hash is left
// untouched.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `UPDATE customers SET name = $1, email = $2, phone = $3,
	               address = $4, portal_access = $5 WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.PortalAccess, customer.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
