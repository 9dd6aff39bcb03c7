package handler

import (
	"net/http"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

func (h *Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name" validate:"required,max=50"`
		LastName  string `json:"last_name" validate:"required,max=50"`
		Bio       string `json:"bio"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	author := &domain.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}

	if err := h.store.CreateAuthor(author); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, author)
}

func (h *Handler) GetAllAuthors(w http.ResponseWriter, r *http.Request) {
	filter := repository.AuthorFilter{
		FirstName: r.URL.Query().Get("first_name"),
		LastName:  r.URL.Query().Get("last_name"),
		OrderBy:   r.URL.Query().Get("order_by"),
	}

	switch filter.OrderBy {
	case "", "first_name", "last_name":
	default:
		h.errorMessage(w, r, http.StatusBadRequest, "Ordering is only supported by first_name or last_name.")
		return
	}

	authors, err := h.store.GetAllAuthors(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(authors) == 0 {
		if !filter.IsZero() {
			h.writeJSON(w, r, http.StatusNotFound, DetailResponse{Detail: "No author(s) found matching the provided filters."})
			return
		}
		h.writeJSON(w, r, http.StatusOK, DetailResponse{Detail: "No authors found in the shop yet."})
		return
	}

	h.writeJSON(w, r, http.StatusOK, authors)
}

func (h *Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.Context().Value(AuthorCtx).(*domain.Author)
	h.writeJSON(w, r, http.StatusOK, author)
}

func (h *Handler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName *string `json:"first_name" validate:"omitempty,max=50"`
		LastName  *string `json:"last_name" validate:"omitempty,max=50"`
		Bio       *string `json:"bio"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	author := r.Context().Value(AuthorCtx).(*domain.Author)

	if req.FirstName != nil {
		author.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		author.LastName = *req.LastName
	}
	if req.Bio != nil {
		author.Bio = *req.Bio
	}

	if err := h.store.UpdateAuthor(author); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.Context().Value(AuthorCtx).(*domain.Author)

	if err := h.store.DeleteAuthor(author.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.errorMessage(w, r, http.StatusOK, "Author deleted.")
}
