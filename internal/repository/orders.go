package repository

import (
	"context"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

// CreateOrder inserts the order and its items in one transaction. Each item
// captures the book's current price, and the matching inventory row is
// decremented; the whole order fails with ErrInsufficientStock when any book
// does not have enough copies.
func (r *Repository) CreateOrder(order *domain.Order) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (reference, customer_name, phone_number, email, status, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id, order_date, updated_at
	`

	args := []any{order.Reference, order.CustomerName, order.PhoneNumber, order.Email, order.Status, order.Notes}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.OrderDate, &order.UpdatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		res, err := tx.ExecContext(ctx, `
			UPDATE book_inventories
			SET stock_quantity = stock_quantity - $2
			WHERE book_id = $1 AND stock_quantity >= $2
		`, item.BookID, item.Quantity)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}

		// price_at_time defaults to the book's current price
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, book_id, quantity, price_at_time)
			SELECT $1, id, $3, price FROM books WHERE id = $2
			RETURNING id, price_at_time
		`, order.ID, item.BookID, item.Quantity).Scan(&item.ID, &item.PriceAtTime); err != nil {
			return err
		}
	}

	if err := tx.QueryRowContext(ctx, `
		UPDATE orders
		SET total_amount = (SELECT COALESCE(SUM(price_at_time * quantity), 0) FROM order_items WHERE order_id = $1)
		WHERE id = $1
		RETURNING total_amount
	`, order.ID).Scan(&order.TotalAmount); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetOrderByID(id int64) (*domain.Order, error) {
	query := `
		SELECT reference, customer_name, phone_number, email, status, total_amount, notes, order_date, updated_at
		FROM orders WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	order := &domain.Order{
		ID: id,
	}
	dst := []any{
		&order.Reference, &order.CustomerName, &order.PhoneNumber, &order.Email,
		&order.Status, &order.TotalAmount, &order.Notes, &order.OrderDate, &order.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadOrderItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) loadOrderItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.dbpool.QueryContext(ctx, `
		SELECT id, book_id, quantity, price_at_time FROM order_items WHERE order_id = $1 ORDER BY id
	`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{
			OrderID: order.ID,
		}
		if err := rows.Scan(&item.ID, &item.BookID, &item.Quantity, &item.PriceAtTime); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}

	return rows.Err()
}

func (r *Repository) GetAllOrders() ([]*domain.Order, error) {
	query := `
		SELECT id, reference, customer_name, phone_number, email, status, total_amount, notes, order_date, updated_at
		FROM orders
		ORDER BY order_date DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		dst := []any{
			&order.ID, &order.Reference, &order.CustomerName, &order.PhoneNumber, &order.Email,
			&order.Status, &order.TotalAmount, &order.Notes, &order.OrderDate, &order.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := r.loadOrderItems(ctx, order); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *Repository) UpdateOrderStatus(order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, order.Status, order.ID).Scan(&order.UpdatedAt); err != nil {
		return err
	}

	return nil
}
