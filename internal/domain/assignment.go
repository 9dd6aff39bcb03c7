package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSelfAssignment aborts a role change whose targets include the acting
// user. The whole request is rejected before any mutation.
var ErrSelfAssignment = errors.New("Cannot assign roles to yourself.")

// RoleChange describes one role transition for message composition,
// e.g. {assign, "assigned", "a bookspace owner", "bookspace owners"}.
type RoleChange struct {
	Transition RoleTransition
	Verb       string
	Singular   string
	Plural     string
}

var (
	AssignOwnerChange = RoleChange{
		Transition: (*User).AssignOwner,
		Verb:       "assigned",
		Singular:   "a bookspace owner",
		Plural:     "bookspace owners",
	}
	AssignManagerChange = RoleChange{
		Transition: (*User).AssignManager,
		Verb:       "assigned",
		Singular:   "a bookspace manager",
		Plural:     "bookspace managers",
	}
	AssignAssistantManagerChange = RoleChange{
		Transition: (*User).AssignAssistantManager,
		Verb:       "assigned",
		Singular:   "an assistant bookspace manager",
		Plural:     "assistant bookspace managers",
	}
	AssignWorkerChange = RoleChange{
		Transition: (*User).AssignWorker,
		Verb:       "assigned",
		Singular:   "a bookspace worker",
		Plural:     "bookspace workers",
	}
	DismissManagerChange = RoleChange{
		Transition: (*User).DismissManager,
		Verb:       "dismissed",
		Singular:   "a bookspace manager",
		Plural:     "bookspace managers",
	}
	DismissAssistantManagerChange = RoleChange{
		Transition: (*User).DismissAssistantManager,
		Verb:       "dismissed",
		Singular:   "an assistant bookspace manager",
		Plural:     "assistant bookspace managers",
	}
	DismissWorkerChange = RoleChange{
		Transition: (*User).DismissWorker,
		Verb:       "dismissed",
		Singular:   "a bookspace worker",
		Plural:     "bookspace workers",
	}
)

type OutcomeKind int

const (
	OutcomeApplied OutcomeKind = iota
	OutcomeNotFound
	OutcomeInvalid
)

// Outcome records the fate of one submitted identifier. Value holds the
// username for applied transitions and the original raw identifier otherwise.
type Outcome struct {
	Kind  OutcomeKind
	Value string
}

// RoleAssignmentResult accumulates per-identifier outcomes in input order.
type RoleAssignmentResult struct {
	Outcomes []Outcome
}

func (r *RoleAssignmentResult) Add(kind OutcomeKind, value string) {
	r.Outcomes = append(r.Outcomes, Outcome{Kind: kind, Value: value})
}

func (r *RoleAssignmentResult) bucket(kind OutcomeKind) []string {
	var values []string
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			values = append(values, o.Value)
		}
	}
	return values
}

func (r *RoleAssignmentResult) Applied() []string  { return r.bucket(OutcomeApplied) }
func (r *RoleAssignmentResult) NotFound() []string { return r.bucket(OutcomeNotFound) }
func (r *RoleAssignmentResult) Invalid() []string  { return r.bucket(OutcomeInvalid) }

// RoleAssignmentResponse is the payload of the bulk role endpoints. All three
// keys may be present at once; absent buckets are omitted.
type RoleAssignmentResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Invalid string `json:"invalid,omitempty"`
}

// Compose renders the three bucket messages for the given change, singular
// phrasing for exactly one entry and a joined listing otherwise.
func (r *RoleAssignmentResult) Compose(change RoleChange) RoleAssignmentResponse {
	resp := RoleAssignmentResponse{}

	if applied := r.Applied(); len(applied) > 0 {
		if len(applied) > 1 {
			resp.Message = fmt.Sprintf("Users %s have been %s as %s.", strings.Join(applied, ", "), change.Verb, change.Plural)
		} else {
			resp.Message = fmt.Sprintf("User %s has been %s as %s.", applied[0], change.Verb, change.Singular)
		}
	}

	if notFound := r.NotFound(); len(notFound) > 0 {
		if len(notFound) > 1 {
			resp.Error = fmt.Sprintf("Users with the following IDs were not found: %s.", strings.Join(notFound, ", "))
		} else {
			resp.Error = fmt.Sprintf("User with ID '%s' was not found.", notFound[0])
		}
	}

	if invalid := r.Invalid(); len(invalid) > 0 {
		if len(invalid) > 1 {
			resp.Invalid = fmt.Sprintf("The following IDs are invalid: %s.", strings.Join(invalid, ", "))
		} else {
			resp.Invalid = fmt.Sprintf("The ID '%s' is invalid.", invalid[0])
		}
	}

	return resp
}
