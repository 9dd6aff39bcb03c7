package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func TestRoleEndpointRequiresAuthentication(t *testing.T) {
	h := newTestHandler(t, newStubStore(), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/assign-bookspace-owner", strings.NewReader(`{"user_ids": ["2"]}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Authentication credentials were not provided.", body["message"])
}

func TestAssignOwnerForbiddenForWorker(t *testing.T) {
	worker := &domain.User{ID: 1, Username: "worker", IsWorker: true}
	h := newTestHandler(t, newStubStore(worker, &domain.User{ID: 2, Username: "target"}), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/assign-bookspace-owner", strings.NewReader(`{"user_ids": ["2"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Only bookspace owners have permission to perform this action.", body["message"])
}

func TestAssignWorkerAllowedForManager(t *testing.T) {
	manager := &domain.User{ID: 1, Username: "manager", IsManager: true}
	target := &domain.User{ID: 2, Username: "grace-otieno"}
	store := newStubStore(manager, target)
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/assign-bookspace-worker", strings.NewReader(`{"user_ids": ["2"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, target.IsWorker)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "User grace-otieno has been assigned as a bookspace worker.", body["message"])
}

func TestBulkRoleChangeReportsAllBuckets(t *testing.T) {
	owner := &domain.User{ID: 1, Username: "admin", IsOwner: true}
	target := &domain.User{ID: 5, Username: "grace-otieno"}
	h := newTestHandler(t, newStubStore(owner, target), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/assign-bookspace-manager", strings.NewReader(`{"user_ids": ["5", "abc", "999"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "User grace-otieno has been assigned as a bookspace manager.", body["message"])
	assert.Equal(t, "User with ID '999' was not found.", body["error"])
	assert.Equal(t, "The ID 'abc' is invalid.", body["invalid"])
}

func TestSelfAssignmentRejectsWholeBatch(t *testing.T) {
	owner := &domain.User{ID: 1, Username: "admin", IsOwner: true}
	target := &domain.User{ID: 2, Username: "grace-otieno"}
	store := newStubStore(owner, target)
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/assign-bookspace-manager", strings.NewReader(`{"user_ids": ["2", "1"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.JSONEq(t, `["Cannot assign roles to yourself."]`, res.Body.String())
	assert.False(t, target.IsManager)
	assert.Empty(t, store.updated)
}

func TestDismissWorkerKeepsOtherFlags(t *testing.T) {
	manager := &domain.User{ID: 1, Username: "manager", IsManager: true}
	target := &domain.User{ID: 3, Username: "faith-achieng", IsAssistantManager: true, IsWorker: true}
	h := newTestHandler(t, newStubStore(manager, target), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/dismiss-bookspace-worker", strings.NewReader(`{"user_ids": ["3"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.False(t, target.IsWorker)
	assert.True(t, target.IsAssistantManager)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "User faith-achieng has been dismissed as a bookspace worker.", body["message"])
}

func TestDismissManagerRequiresOwner(t *testing.T) {
	manager := &domain.User{ID: 1, Username: "manager", IsManager: true}
	other := &domain.User{ID: 2, Username: "other", IsManager: true}
	h := newTestHandler(t, newStubStore(manager, other), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/dismiss-bookspace-manager", strings.NewReader(`{"user_ids": ["2"]}`))
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.True(t, other.IsManager)
}

func TestGenerateUsernameEndpoint(t *testing.T) {
	h := newTestHandler(t, newStubStore(&domain.User{ID: 1, Username: "peter-evance"}), nil)

	req := httptest.NewRequest(http.MethodPost, "/users/generate-username", strings.NewReader(`{"first_name": "Peter", "last_name": "Evance"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "peter-evance-1", body["username"])
}

func TestGenerateUsernameMissingNames(t *testing.T) {
	h := newTestHandler(t, newStubStore(), nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing first name", `{"last_name": "Evance"}`, "First name is required."},
		{"missing last name", `{"first_name": "Peter"}`, "Last name is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/generate-username", strings.NewReader(tt.body))
			res := httptest.NewRecorder()
			h.Mux.ServeHTTP(res, req)

			assert.Equal(t, http.StatusBadRequest, res.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["error"])
		})
	}
}
