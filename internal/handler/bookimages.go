package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func (h *Handler) CreateBookImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID     int64  `json:"book" validate:"required"`
		CoverImage string `json:"cover_image" validate:"required,url"`
		Thumbnail  string `json:"thumbnail" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.store.GetBookByID(req.BookID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorMessage(w, r, http.StatusBadRequest, "Book not found.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	image := &domain.BookImage{
		BookID:     req.BookID,
		CoverImage: req.CoverImage,
		Thumbnail:  req.Thumbnail,
	}

	if err := h.store.CreateBookImage(image); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, image)
}

func (h *Handler) GetBookImage(w http.ResponseWriter, r *http.Request) {
	image := r.Context().Value(BookImageCtx).(*domain.BookImage)
	h.writeJSON(w, r, http.StatusOK, image)
}

func (h *Handler) GetBookImages(w http.ResponseWriter, r *http.Request) {
	book := r.Context().Value(BookCtx).(*domain.Book)

	images, err := h.store.GetBookImagesByBookID(book.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, images)
}

func (h *Handler) UpdateBookImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CoverImage *string `json:"cover_image" validate:"omitempty,url"`
		Thumbnail  *string `json:"thumbnail" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	image := r.Context().Value(BookImageCtx).(*domain.BookImage)

	if req.CoverImage != nil {
		image.CoverImage = *req.CoverImage
	}
	if req.Thumbnail != nil {
		image.Thumbnail = *req.Thumbnail
	}

	if err := h.store.UpdateBookImage(image); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, image)
}

func (h *Handler) DeleteBookImage(w http.ResponseWriter, r *http.Request) {
	image := r.Context().Value(BookImageCtx).(*domain.BookImage)

	if err := h.store.DeleteBookImage(image.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.errorMessage(w, r, http.StatusOK, "Book image deleted.")
}
