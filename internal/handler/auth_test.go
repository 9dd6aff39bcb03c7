package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSetsTokenCookie(t *testing.T) {
	user := &domain.User{ID: 1, Username: "peter-evance", PasswordHash: hashPassword(t, "correct-horse")}
	h := newTestHandler(t, newStubStore(user), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "peter-evance", "password": "correct-horse"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	cookies := res.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "__bookspace_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := &domain.User{ID: 1, Username: "peter-evance", PasswordHash: hashPassword(t, "correct-horse")}
	h := newTestHandler(t, newStubStore(user), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "peter-evance", "password": "wrong"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Invalid username or password.", body["message"])
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	h := newTestHandler(t, newStubStore(), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "ghost", "password": "whatever"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Invalid username or password.", body["message"])
}

func TestMyInfoReturnsPrincipal(t *testing.T) {
	user := &domain.User{ID: 7, Username: "grace-otieno", IsWorker: true}
	h := newTestHandler(t, newStubStore(user), nil)

	req := httptest.NewRequest(http.MethodGet, "/my-info", nil)
	req.AddCookie(authCookie(t, 7))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "grace-otieno", body["username"])
	assert.Equal(t, true, body["isBookspaceWorker"])
}

func TestMyInfoWithBadTokenIsRejected(t *testing.T) {
	h := newTestHandler(t, newStubStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/my-info", nil)
	req.AddCookie(&http.Cookie{Name: "__bookspace_token", Value: "garbage"})
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token.", body["message"])
}

func TestResetPasswordFlow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	user := &domain.User{ID: 1, Username: "peter-evance", Email: "peter@bookspace.shop", PasswordHash: hashPassword(t, "old-password")}
	store := newStubStore(user)
	h := newTestHandler(t, store, rdb)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password/require", strings.NewReader(`{"username": "peter-evance"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	otp, err := mr.Get("otp_peter-evance_reset_password")
	require.NoError(t, err)
	require.Len(t, otp, 6)

	confirmBody := `{"username": "peter-evance", "otp": "` + otp + `", "password": "brand-new-password"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/reset-password/confirm", strings.NewReader(confirmBody))
	res = httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	require.Len(t, store.updated, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("brand-new-password")))

	// the code is single use
	assert.False(t, mr.Exists("otp_peter-evance_reset_password"))
}

func TestConfirmResetPasswordRejectsWrongCode(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	user := &domain.User{ID: 1, Username: "peter-evance", PasswordHash: hashPassword(t, "old-password")}
	store := newStubStore(user)
	h := newTestHandler(t, store, rdb)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password/confirm", strings.NewReader(`{"username": "peter-evance", "otp": "000000", "password": "brand-new-password"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Empty(t, store.updated)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Invalid reset code.", body["message"])
}

func TestRequireResetPasswordDoesNotRevealUnknownUsers(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	h := newTestHandler(t, newStubStore(), rdb)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password/require", strings.NewReader(`{"username": "ghost"}`))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "A reset code has been sent to your email.", body["message"])
}
