package domain

// Tier is a minimum-role requirement gating an action.
type Tier int

const (
	TierOwnerOnly Tier = iota
	TierManagerOrAbove
	TierAssistantManagerOrAbove
	TierWorkerOrAbove
)

// Permits reports whether the user's role flags satisfy the tier.
func (t Tier) Permits(u *User) bool {
	switch t {
	case TierOwnerOnly:
		return u.IsOwner
	case TierManagerOrAbove:
		return u.IsOwner || u.IsManager
	case TierAssistantManagerOrAbove:
		return u.IsOwner || u.IsManager || u.IsAssistantManager
	case TierWorkerOrAbove:
		return u.IsOwner || u.IsManager || u.IsAssistantManager || u.IsWorker
	default:
		return false
	}
}

// Message is the denial text returned alongside HTTP 403 for this tier.
func (t Tier) Message() string {
	switch t {
	case TierOwnerOnly:
		return "Only bookspace owners have permission to perform this action."
	case TierManagerOrAbove:
		return "Only bookspace owners and managers have permission to perform this action."
	case TierAssistantManagerOrAbove:
		return "Only bookspace owners, managers, and assistants have permission to perform this action."
	case TierWorkerOrAbove:
		return "Only bookspace staff and workers have permission to perform this action."
	default:
		return "You do not have permission to perform this action."
	}
}
