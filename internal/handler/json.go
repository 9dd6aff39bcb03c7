package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// MessageResponse is the envelope for error and notice messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse mirrors the list-endpoint notices ("No authors found ...").
type DetailResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) errorMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, MessageResponse{Message: msg})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.errorMessage(w, r, http.StatusBadRequest, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorMessage(w, r, http.StatusInternalServerError, "Internal server error.")
}
