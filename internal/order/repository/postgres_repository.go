package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tair/shop-admin/internal/order/domain"
)

// PostgresOrderRepository implements OrderRepository interface
type PostgresOrderRepository struct {
	db *sql.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Create inserts a new order into the database
func (r *PostgresOrderRepository) Create(order *domain.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `
		INSERT INTO orders (user_id, items, items_price, delivery_price, discount, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(
		query,
		order.UserID,
		order.Items,
		order.ItemsPrice,
		order.DeliveryPrice,
		order.Discount,
		order.TotalPrice,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)

	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// FindByID retrieves an order by ID
func (r *PostgresOrderRepository) FindByID(id uint) (*domain.Order, error) {
	order := &domain.Order{}
	query := `
		SELECT id, user_id, items, items_price, delivery_price, discount, total_price, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Items,
		&order.ItemsPrice,
		&order.DeliveryPrice,
		&order.Discount,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// FindAll retrieves orders, newest first
func (r *PostgresOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, items, items_price, delivery_price, discount, total_price, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryOrders(query, limit, offset)
}

// FindByUserID retrieves a user's orders, newest first
func (r *PostgresOrderRepository) FindByUserID(userID uint, limit, offset int) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, items, items_price, delivery_price, discount, total_price, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryOrders(query, userID, limit, offset)
}

func (r *PostgresOrderRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Items,
			&order.ItemsPrice,
			&order.DeliveryPrice,
			&order.Discount,
			&order.TotalPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// UpdateStatus updates an order's status
func (r *PostgresOrderRepository) UpdateStatus(id uint, status string) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes an order from the database
func (r *PostgresOrderRepository) Delete(id uint) error {
	query := `DELETE FROM orders WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Count returns the total number of orders
func (r *PostgresOrderRepository) Count() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM orders`

	err := r.db.QueryRow(query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// InitSchema creates the orders table if it doesn't exist
func (r *PostgresOrderRepository) InitSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			items_price NUMERIC(12,2) NOT NULL,
			delivery_price NUMERIC(12,2) NOT NULL,
			discount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_price NUMERIC(12,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'created',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
