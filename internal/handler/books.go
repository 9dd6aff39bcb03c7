package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string     `json:"title" validate:"required,max=200"`
		Description     string     `json:"description"`
		PublicationDate *time.Time `json:"publication_date"`
		ISBN            string     `json:"isbn" validate:"required,max=17"`
		Price           string     `json:"price" validate:"required,numeric"`
		AuthorIDs       []int64    `json:"authors"`
		TagIDs          []int64    `json:"tags"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	book := &domain.Book{
		Title:           req.Title,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		ISBN:            req.ISBN,
		Price:           req.Price,
		AuthorIDs:       req.AuthorIDs,
		TagIDs:          req.TagIDs,
	}

	if err := h.store.CreateBook(book); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "books_isbn_key":
			h.errorMessage(w, r, http.StatusBadRequest, "A book with this ISBN already exists.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, book)
}

func (h *Handler) GetAllBooks(w http.ResponseWriter, r *http.Request) {
	filter := repository.BookFilter{
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
	}

	books, err := h.store.GetAllBooks(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(books) == 0 {
		if !filter.IsZero() {
			h.writeJSON(w, r, http.StatusNotFound, DetailResponse{Detail: "No book(s) found matching the provided filters."})
			return
		}
		h.writeJSON(w, r, http.StatusOK, DetailResponse{Detail: "No books found in the shop yet."})
		return
	}

	h.writeJSON(w, r, http.StatusOK, books)
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	book := r.Context().Value(BookCtx).(*domain.Book)
	h.writeJSON(w, r, http.StatusOK, book)
}

func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           *string    `json:"title" validate:"omitempty,max=200"`
		Description     *string    `json:"description"`
		PublicationDate *time.Time `json:"publication_date"`
		ISBN            *string    `json:"isbn" validate:"omitempty,max=17"`
		Price           *string    `json:"price" validate:"omitempty,numeric"`
		AuthorIDs       []int64    `json:"authors"`
		TagIDs          []int64    `json:"tags"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	book := r.Context().Value(BookCtx).(*domain.Book)

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.PublicationDate != nil {
		book.PublicationDate = req.PublicationDate
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.AuthorIDs != nil {
		book.AuthorIDs = req.AuthorIDs
	}
	if req.TagIDs != nil {
		book.TagIDs = req.TagIDs
	}

	if err := h.store.UpdateBook(book); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "books_isbn_key":
			h.errorMessage(w, r, http.StatusBadRequest, "A book with this ISBN already exists.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, book)
}

func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	book := r.Context().Value(BookCtx).(*domain.Book)

	if err := h.store.DeleteBook(book.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.errorMessage(w, r, http.StatusOK, "Book deleted.")
}
