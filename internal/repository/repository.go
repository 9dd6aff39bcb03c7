package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/peter-evance/bookspace/backend/internal/config"
)

// ErrInsufficientStock is returned when an order asks for more copies of a
// book than the inventory holds.
var ErrInsufficientStock = errors.New("insufficient stock")

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}
