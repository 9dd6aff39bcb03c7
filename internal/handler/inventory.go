package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func (h *Handler) GetBookInventory(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		h.errorMessage(w, r, http.StatusBadRequest, "Invalid book ID.")
		return
	}

	inventory, err := h.store.GetBookInventory(bookID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorMessage(w, r, http.StatusNotFound, "Inventory not found.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, inventory)
}

// UpdateBookInventory takes either an absolute stock_quantity or a signed
// delta; exactly one of the two must be present.
func (h *Handler) UpdateBookInventory(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		h.errorMessage(w, r, http.StatusBadRequest, "Invalid book ID.")
		return
	}

	var req struct {
		StockQuantity *int32 `json:"stock_quantity" validate:"omitempty,min=0"`
		Delta         *int32 `json:"delta"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if (req.StockQuantity == nil) == (req.Delta == nil) {
		h.errorMessage(w, r, http.StatusBadRequest, "Provide either stock_quantity or delta.")
		return
	}

	if req.StockQuantity != nil {
		inventory := &domain.BookInventory{
			BookID:        bookID,
			StockQuantity: *req.StockQuantity,
		}
		if err := h.store.SetBookStock(inventory); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Inventory not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		h.writeJSON(w, r, http.StatusOK, inventory)
		return
	}

	inventory, err := h.store.AdjustBookStock(bookID, *req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorMessage(w, r, http.StatusBadRequest, "Stock cannot go below zero.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, inventory)
}
