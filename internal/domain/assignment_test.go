package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func TestComposeSingleApplied(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeApplied, "peter-evance")

	resp := result.Compose(domain.AssignOwnerChange)

	assert.Equal(t, "User peter-evance has been assigned as a bookspace owner.", resp.Message)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Invalid)
}

func TestComposeMultipleApplied(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeApplied, "peter-evance")
	result.Add(domain.OutcomeApplied, "grace-otieno")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Equal(t, "Users peter-evance, grace-otieno have been assigned as bookspace workers.", resp.Message)
}

func TestComposeSingularArticle(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeApplied, "grace-otieno")

	resp := result.Compose(domain.AssignAssistantManagerChange)

	assert.Equal(t, "User grace-otieno has been assigned as an assistant bookspace manager.", resp.Message)
}

func TestComposeDismissVerb(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeApplied, "peter-evance")

	resp := result.Compose(domain.DismissManagerChange)

	assert.Equal(t, "User peter-evance has been dismissed as a bookspace manager.", resp.Message)
}

func TestComposeNotFound(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeNotFound, "999")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Empty(t, resp.Message)
	assert.Equal(t, "User with ID '999' was not found.", resp.Error)
}

func TestComposeMultipleNotFound(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeNotFound, "999")
	result.Add(domain.OutcomeNotFound, "1000")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Equal(t, "Users with the following IDs were not found: 999, 1000.", resp.Error)
}

func TestComposeInvalid(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeInvalid, "abc")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Equal(t, "The ID 'abc' is invalid.", resp.Invalid)
}

func TestComposeMultipleInvalid(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeInvalid, "abc")
	result.Add(domain.OutcomeInvalid, "1.5")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Equal(t, "The following IDs are invalid: abc, 1.5.", resp.Invalid)
}

func TestComposeAllBucketsAtOnce(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeApplied, "peter-evance")
	result.Add(domain.OutcomeInvalid, "abc")
	result.Add(domain.OutcomeNotFound, "999")

	resp := result.Compose(domain.AssignWorkerChange)

	assert.Equal(t, "User peter-evance has been assigned as a bookspace worker.", resp.Message)
	assert.Equal(t, "User with ID '999' was not found.", resp.Error)
	assert.Equal(t, "The ID 'abc' is invalid.", resp.Invalid)
}

func TestBucketsPreserveInputOrder(t *testing.T) {
	result := &domain.RoleAssignmentResult{}
	result.Add(domain.OutcomeNotFound, "7")
	result.Add(domain.OutcomeApplied, "b")
	result.Add(domain.OutcomeNotFound, "3")
	result.Add(domain.OutcomeApplied, "a")

	assert.Equal(t, []string{"b", "a"}, result.Applied())
	assert.Equal(t, []string{"7", "3"}, result.NotFound())
}
