package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT id, username, password_hash, role_id, full_name, email
	               FROM users WHERE username = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.FullName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

const userWithRoleColumns = `SELECT u.id, u.username, u.full_name, u.email,
	       COALESCE(r.id, 0), COALESCE(r.name, '')
	FROM users u LEFT JOIN roles r ON u.role_id = r.id`

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.UserWithRole, error) {
	query := userWithRoleColumns + ` WHERE u.id = $1`

	var u domain.UserWithRole
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role.ID, &u.Role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.UserWithRole, error) {
	rows, err := r.pool.Query(ctx, userWithRoleColumns+` ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsersWithRole(rows)
}

func (r *UserRepository) Search(ctx context.Context, query string) ([]domain.UserWithRole, error) {
	const sql = userWithRoleColumns + `
	 WHERE u.username ILIKE '%' || $1 || '%'
	    OR u.full_name ILIKE '%' || $1 || '%'
	    OR u.email ILIKE '%' || $1 || '%'
	 ORDER BY u.id`

	rows, err := r.pool.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	return scanUsersWithRole(rows)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (username, password_hash, role_id, full_name, email)
	               VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.RoleID, user.FullName, user.Email).
		Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UpdateDetails updates username and email; a non-empty passwordHash also
// replaces the stored hash.
func (r *UserRepository) UpdateDetails(ctx context.Context, id int, username, email, passwordHash string) error {
	var tag pgconn.CommandTag
	var err error
	if passwordHash != "" {
		const query = `UPDATE users SET username = $1, email = $2, password_hash = $3 WHERE id = $4`
		tag, err = r.pool.Exec(ctx, query, username, email, passwordHash, id)
	} else {
		const query = `UPDATE users SET username = $1, email = $2 WHERE id = $3`
		tag, err = r.pool.Exec(ctx, query, username, email, id)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, roleID int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET role_id = $1 WHERE id = $2`, roleID, id)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUsersWithRole(rows pgx.Rows) ([]domain.UserWithRole, error) {
	var users []domain.UserWithRole
	for rows.Next() {
		var u domain.UserWithRole
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role.ID, &u.Role.Name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
