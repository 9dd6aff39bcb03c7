package repository

import (
	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func (r *Repository) GetBookInventory(bookID int64) (*domain.BookInventory, error) {
	query := `
		SELECT stock_quantity FROM book_inventories WHERE book_id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	inventory := &domain.BookInventory{
		BookID: bookID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, bookID).Scan(&inventory.StockQuantity); err != nil {
		return nil, err
	}

	return inventory, nil
}

func (r *Repository) SetBookStock(inventory *domain.BookInventory) error {
	query := `
		UPDATE book_inventories
		SET stock_quantity = $1
		WHERE book_id = $2
		RETURNING stock_quantity
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, inventory.StockQuantity, inventory.BookID).Scan(&inventory.StockQuantity); err != nil {
		return err
	}

	return nil
}

// AdjustBookStock applies a relative delta, refusing to go negative.
func (r *Repository) AdjustBookStock(bookID int64, delta int32) (*domain.BookInventory, error) {
	query := `
		UPDATE book_inventories
		SET stock_quantity = stock_quantity + $2
		WHERE book_id = $1 AND stock_quantity + $2 >= 0
		RETURNING stock_quantity
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	inventory := &domain.BookInventory{
		BookID: bookID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, bookID, delta).Scan(&inventory.StockQuantity); err != nil {
		return nil, err
	}

	return inventory, nil
}
