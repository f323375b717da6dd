package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
)

const orderColumns = `
	id, customer_id, restaurant_id, customer_location, restaurant_location,
	restaurant_lat, restaurant_lng, payment_method, payment_status, tracking_info,
	subtotal_amount, delivery_fee, service_fee, total_amount,
	customer_note, restaurant_note, order_time, updated_at`

// OrderRepo implements the order repository on PostgreSQL
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

type itemRow struct {
	OrderID uuid.UUID `db:"order_id"`
	models.OrderItem
}

// CreateOrder inserts the order row and its items in one transaction
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (` + orderColumns + `
		) VALUES (
			:id, :customer_id, :restaurant_id, :customer_location, :restaurant_location,
			:restaurant_lat, :restaurant_lng, :payment_method, :payment_status, :tracking_info,
			:subtotal_amount, :delivery_fee, :service_fee, :total_amount,
			:customer_note, :restaurant_note, :order_time, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, order.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, item_id, variant_id, name, quantity, price_at_time_of_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, order.ID, i, item.ItemID, item.VariantID, item.Name, item.Quantity, item.PriceAtTimeOfOrder)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetOrder loads one order with its items
func (r *OrderRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var dto models.OrderDTO
	err := r.db.GetContext(ctx, &dto, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, orders.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order := dto.ToOrder()
	order.Items = []models.OrderItem{}
	err = r.db.SelectContext(ctx, &order.Items, `
		SELECT item_id, variant_id, name, quantity, price_at_time_of_order
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return order, nil
}

// ListRestaurantOrders returns the restaurant's orders newest first, optionally filtered by status
func (r *OrderRepo) ListRestaurantOrders(ctx context.Context, restaurantID string, status models.TrackingStatus) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if status != "" {
		query += ` AND tracking_info = $2`
		args = append(args, string(status))
	}
	query += ` ORDER BY order_time DESC`

	var dtos []models.OrderDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list restaurant orders: %w", err)
	}

	result := make([]models.Order, 0, len(dtos))
	if len(dtos) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	itemQuery, itemArgs, err := sqlx.In(`
		SELECT order_id, item_id, variant_id, name, quantity, price_at_time_of_order
		FROM order_items
		WHERE order_id IN (?)
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build order items query: %w", err)
	}

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(itemQuery), itemArgs...); err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]models.OrderItem, len(dtos))
	for _, row := range rows {
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], row.OrderItem)
	}

	for i := range dtos {
		order := dtos[i].ToOrder()
		order.Items = itemsByOrder[order.ID]
		if order.Items == nil {
			order.Items = []models.OrderItem{}
		}
		result = append(result, *order)
	}
	return result, nil
}

// UpdateTrackingStatus moves the order from one status to the next. It fails with
// ErrInvalidTransition when the stored status is no longer from.
func (r *OrderRepo) UpdateTrackingStatus(ctx context.Context, orderID uuid.UUID, from, to models.TrackingStatus, restaurantNote string, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET tracking_info = $1,
			restaurant_note = CASE WHEN $2 = '' THEN restaurant_note ELSE $2 END,
			updated_at = $3
		WHERE id = $4 AND tracking_info = $5
	`, string(to), restaurantNote, updatedAt, orderID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update tracking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return orders.ErrInvalidTransition
	}
	return nil
}
