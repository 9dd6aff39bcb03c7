package handler

import (
	"net/http"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

func (h *Handler) CreateBookTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required,oneof=Fiction Fantasy Comedy Adventure Romance Sci-Fi History 'Self Improvement'"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tag := &domain.BookTag{
		Name:        domain.BookTagName(req.Name),
		Description: req.Description,
	}

	if err := h.store.CreateBookTag(tag); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, tag)
}

func (h *Handler) GetAllBookTags(w http.ResponseWriter, r *http.Request) {
	filter := repository.BookTagFilter{
		Name: r.URL.Query().Get("name"),
	}

	tags, err := h.store.GetAllBookTags(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(tags) == 0 {
		if !filter.IsZero() {
			h.writeJSON(w, r, http.StatusNotFound, DetailResponse{Detail: "No tag(s) found matching the provided filters."})
			return
		}
		h.writeJSON(w, r, http.StatusOK, DetailResponse{Detail: "No book tags found in the shop yet."})
		return
	}

	h.writeJSON(w, r, http.StatusOK, tags)
}

func (h *Handler) GetBookTag(w http.ResponseWriter, r *http.Request) {
	tag := r.Context().Value(BookTagCtx).(*domain.BookTag)
	h.writeJSON(w, r, http.StatusOK, tag)
}

func (h *Handler) UpdateBookTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name" validate:"omitempty,oneof=Fiction Fantasy Comedy Adventure Romance Sci-Fi History 'Self Improvement'"`
		Description *string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tag := r.Context().Value(BookTagCtx).(*domain.BookTag)

	if req.Name != nil {
		tag.Name = domain.BookTagName(*req.Name)
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}

	if err := h.store.UpdateBookTag(tag); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, tag)
}

func (h *Handler) DeleteBookTag(w http.ResponseWriter, r *http.Request) {
	tag := r.Context().Value(BookTagCtx).(*domain.BookTag)

	if err := h.store.DeleteBookTag(tag.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.errorMessage(w, r, http.StatusOK, "Book tag deleted.")
}
