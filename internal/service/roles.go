// Package service holds the role-assignment workflow behind a narrow store
// interface so it can be exercised without a database.
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/utils"
)

// UserStore is the slice of the repository the role workflow needs.
type UserStore interface {
	GetUserByID(id int64) (*domain.User, error)
	UpdateUser(user *domain.User) error
	UsernameExists(username string) (bool, error)
}

type RoleService struct {
	store UserStore
}

func NewRoleService(store UserStore) *RoleService {
	return &RoleService{store: store}
}

// ApplyRoleChange walks the submitted identifiers in order and applies the
// change to each resolved user. Identifiers that do not parse land in the
// invalid bucket, parseable ones without a matching user in the not-found
// bucket; neither aborts the batch. A batch that targets the acting user is
// rejected as a whole with ErrSelfAssignment before anything is persisted.
func (s *RoleService) ApplyRoleChange(actor *domain.User, targetIDs []string, change domain.RoleChange) (*domain.RoleAssignmentResult, error) {
	for _, raw := range targetIDs {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id == actor.ID {
			return nil, domain.ErrSelfAssignment
		}
	}

	result := &domain.RoleAssignmentResult{}

	for _, raw := range targetIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			result.Add(domain.OutcomeInvalid, raw)
			continue
		}

		user, err := s.store.GetUserByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// reported with the identifier as submitted, not the parsed value
				result.Add(domain.OutcomeNotFound, raw)
				continue
			}
			return nil, err
		}

		change.Transition(user)
		if err := s.store.UpdateUser(user); err != nil {
			return nil, err
		}

		result.Add(domain.OutcomeApplied, user.Username)
	}

	return result, nil
}

// GenerateUsername slugs "first-last" and probes the store for the first free
// variant, appending -1, -2, ... on collisions. The check runs against the
// current store state on every call; concurrent registrations for the same
// name pair are serialized only by the unique constraint at insert time.
func (s *RoleService) GenerateUsername(firstName, lastName string) (string, error) {
	base := utils.Slugify(firstName, lastName)
	username := base

	for counter := 1; ; counter++ {
		exists, err := s.store.UsernameExists(username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s-%d", base, counter)
	}
}
