package handler_test

import (
	"database/sql"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/peter-evance/bookspace/backend/internal/config"
	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/handler"
)

const testJWTSecret = "test-secret"

// stubStore backs handler tests with in-memory users. The embedded interface
// panics on any method a test did not expect to be called.
type stubStore struct {
	handler.Store
	users   map[int64]*domain.User
	byName  map[string]*domain.User
	updated []*domain.User
}

func newStubStore(users ...*domain.User) *stubStore {
	s := &stubStore{
		users:  make(map[int64]*domain.User),
		byName: make(map[string]*domain.User),
	}
	for _, u := range users {
		s.users[u.ID] = u
		s.byName[u.Username] = u
	}
	return s
}

func (s *stubStore) GetUserByID(id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubStore) GetUserByUsername(username string) (*domain.User, error) {
	u, ok := s.byName[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubStore) GetAllUsers() ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *stubStore) UpdateUser(user *domain.User) error {
	s.updated = append(s.updated, user)
	return nil
}

func (s *stubStore) UsernameExists(username string) (bool, error) {
	_, ok := s.byName[username]
	return ok, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 3600
	cfg.OTP.Expiration = 900
	cfg.Redis.OperationTimeout = 5
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Window = 60
	return cfg
}

func newTestHandler(t *testing.T, store handler.Store, rdb *redis.Client) *handler.Handler {
	t.Helper()
	h, err := handler.NewHandler(testConfig(), store, nil, rdb)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

// authCookie builds the token cookie the auth middleware expects.
func authCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, handler.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   strconv.FormatInt(userID, 10),
		},
	})
	ss, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: "__bookspace_token", Value: ss}
}
