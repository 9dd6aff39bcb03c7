package handler

import (
	"net/http"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/metrics"
)

// actionTiers maps (resource, action) to the minimum role tier required.
// Every gated route looks its requirement up here; an action missing from
// the table cannot be permitted.
var actionTiers = map[string]domain.Tier{
	"users.list":   domain.TierWorkerOrAbove,
	"users.get":    domain.TierWorkerOrAbove,
	"users.update": domain.TierOwnerOnly,
	"users.delete": domain.TierOwnerOnly,

	"roles.assign-owner":             domain.TierOwnerOnly,
	"roles.assign-manager":           domain.TierOwnerOnly,
	"roles.assign-assistant-manager": domain.TierOwnerOnly,
	"roles.assign-worker":            domain.TierManagerOrAbove,
	"roles.dismiss-manager":          domain.TierOwnerOnly,
	"roles.dismiss-assistant-manager": domain.TierOwnerOnly,
	"roles.dismiss-worker":            domain.TierManagerOrAbove,

	"authors.list":   domain.TierAssistantManagerOrAbove,
	"authors.get":    domain.TierAssistantManagerOrAbove,
	"authors.create": domain.TierAssistantManagerOrAbove,
	"authors.update": domain.TierAssistantManagerOrAbove,
	"authors.delete": domain.TierManagerOrAbove,

	"tags.list":   domain.TierAssistantManagerOrAbove,
	"tags.get":    domain.TierAssistantManagerOrAbove,
	"tags.create": domain.TierAssistantManagerOrAbove,
	"tags.update": domain.TierAssistantManagerOrAbove,
	"tags.delete": domain.TierManagerOrAbove,

	"books.create": domain.TierWorkerOrAbove,
	"books.update": domain.TierWorkerOrAbove,
	"books.delete": domain.TierManagerOrAbove,

	"book-images.create": domain.TierWorkerOrAbove,
	"book-images.update": domain.TierAssistantManagerOrAbove,
	"book-images.delete": domain.TierManagerOrAbove,

	"orders.list":          domain.TierWorkerOrAbove,
	"orders.get":           domain.TierWorkerOrAbove,
	"orders.update-status": domain.TierWorkerOrAbove,

	"inventory.get":    domain.TierWorkerOrAbove,
	"inventory.update": domain.TierWorkerOrAbove,
}

// requirePermission gates an action behind its tier. It runs after auth, so
// a principal is always attached; a missing one means a wiring bug and reads
// as unauthenticated rather than a panic.
func (h *Handler) requirePermission(resource, action string) func(next http.Handler) http.Handler {
	tier, ok := actionTiers[resource+"."+action]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := r.Context().Value(PrincipalCtx).(*domain.User)
			if principal == nil {
				metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
				h.errorMessage(w, r, http.StatusUnauthorized, unauthenticatedMessage)
				return
			}
			if !ok || !tier.Permits(principal) {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				h.errorMessage(w, r, http.StatusForbidden, tier.Message())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
