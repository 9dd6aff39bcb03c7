package handler

import (
	"errors"
	"net/http"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/metrics"
)

// roleChangeHandler builds the endpoint for one bulk role transition. The
// batch is processed in submission order and partial failures land in the
// response buckets, not in the HTTP status; only a self-targeting batch is
// rejected outright.
func (h *Handler) roleChangeHandler(change domain.RoleChange, metricAction, metricRole string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserIDs []string `json:"user_ids" validate:"required"`
		}

		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		result, err := h.roles.ApplyRoleChange(h.principal(r), req.UserIDs, change)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSelfAssignment):
				h.writeJSON(w, r, http.StatusBadRequest, []string{domain.ErrSelfAssignment.Error()})
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		metrics.RoleChangesTotal.WithLabelValues(metricAction, metricRole).Add(float64(len(result.Applied())))

		h.writeJSON(w, r, http.StatusOK, result.Compose(change))
	}
}

func (h *Handler) GenerateUsername(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FirstName == "" {
		h.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "First name is required."})
		return
	}
	if req.LastName == "" {
		h.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "Last name is required."})
		return
	}

	username, err := h.roles.GenerateUsername(req.FirstName, req.LastName)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"username": username})
}
