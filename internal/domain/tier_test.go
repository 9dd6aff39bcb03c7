package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func TestTierPermits(t *testing.T) {
	owner := &domain.User{IsOwner: true}
	manager := &domain.User{IsManager: true}
	assistant := &domain.User{IsAssistantManager: true}
	worker := &domain.User{IsWorker: true}
	regular := &domain.User{}

	tests := []struct {
		name string
		tier domain.Tier
		user *domain.User
		want bool
	}{
		{"owner only allows owner", domain.TierOwnerOnly, owner, true},
		{"owner only denies manager", domain.TierOwnerOnly, manager, false},
		{"manager or above allows owner", domain.TierManagerOrAbove, owner, true},
		{"manager or above allows manager", domain.TierManagerOrAbove, manager, true},
		{"manager or above denies assistant", domain.TierManagerOrAbove, assistant, false},
		{"assistant or above allows assistant", domain.TierAssistantManagerOrAbove, assistant, true},
		{"assistant or above denies worker", domain.TierAssistantManagerOrAbove, worker, false},
		{"worker or above allows worker", domain.TierWorkerOrAbove, worker, true},
		{"worker or above denies regular user", domain.TierWorkerOrAbove, regular, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.Permits(tt.user))
		})
	}
}
