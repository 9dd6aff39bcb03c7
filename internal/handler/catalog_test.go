package handler_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

// catalogStore extends the user stub with authors, books and orders.
type catalogStore struct {
	*stubStore
	authors  map[int64]*domain.Author
	books    []*domain.Book
	stockOut bool
	orders   []*domain.Order
}

func newCatalogStore(users ...*domain.User) *catalogStore {
	return &catalogStore{
		stubStore: newStubStore(users...),
		authors:   make(map[int64]*domain.Author),
	}
}

func (s *catalogStore) GetAuthorByID(id int64) (*domain.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return a, nil
}

func (s *catalogStore) GetAllAuthors(filter repository.AuthorFilter) ([]*domain.Author, error) {
	authors := make([]*domain.Author, 0)
	for _, a := range s.authors {
		if filter.FirstName != "" && !strings.Contains(strings.ToLower(a.FirstName), strings.ToLower(filter.FirstName)) {
			continue
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (s *catalogStore) DeleteAuthor(id int64) error {
	delete(s.authors, id)
	return nil
}

func (s *catalogStore) GetAllBooks(filter repository.BookFilter) ([]*domain.Book, error) {
	if !filter.IsZero() {
		return []*domain.Book{}, nil
	}
	return s.books, nil
}

func (s *catalogStore) CreateOrder(order *domain.Order) error {
	if s.stockOut {
		return repository.ErrInsufficientStock
	}
	order.ID = int64(len(s.orders) + 1)
	order.TotalAmount = "2400.00"
	s.orders = append(s.orders, order)
	return nil
}

func TestGetAllBooksEmptyShop(t *testing.T) {
	h := newTestHandler(t, newCatalogStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"detail": "No books found in the shop yet."}`, res.Body.String())
}

func TestGetAllBooksNoFilterMatch(t *testing.T) {
	store := newCatalogStore()
	store.books = []*domain.Book{{ID: 1, Title: "Dune"}}
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodGet, "/books?search=nonexistent", nil)
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"detail": "No book(s) found matching the provided filters."}`, res.Body.String())
}

func TestListAuthorsForbiddenForWorker(t *testing.T) {
	worker := &domain.User{ID: 1, Username: "worker", IsWorker: true}
	h := newTestHandler(t, newCatalogStore(worker), nil)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Only bookspace owners, managers, and assistants have permission to perform this action.", body["message"])
}

func TestListAuthorsAllowedForAssistantManager(t *testing.T) {
	assistant := &domain.User{ID: 1, Username: "assistant", IsAssistantManager: true}
	store := newCatalogStore(assistant)
	store.authors[10] = &domain.Author{ID: 10, FirstName: "Chinua", LastName: "Achebe"}
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var authors []domain.Author
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &authors))
	require.Len(t, authors, 1)
	assert.Equal(t, "Chinua", authors[0].FirstName)
}

func TestDeleteAuthorForbiddenForAssistantManager(t *testing.T) {
	assistant := &domain.User{ID: 1, Username: "assistant", IsAssistantManager: true}
	store := newCatalogStore(assistant)
	store.authors[10] = &domain.Author{ID: 10, FirstName: "Chinua", LastName: "Achebe"}
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodDelete, "/authors/10", nil)
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Contains(t, store.authors, int64(10))

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Only bookspace owners and managers have permission to perform this action.", body["message"])
}

func TestDeleteAuthorAllowedForManager(t *testing.T) {
	manager := &domain.User{ID: 1, Username: "manager", IsManager: true}
	store := newCatalogStore(manager)
	store.authors[10] = &domain.Author{ID: 10, FirstName: "Chinua", LastName: "Achebe"}
	h := newTestHandler(t, store, nil)

	req := httptest.NewRequest(http.MethodDelete, "/authors/10", nil)
	req.AddCookie(authCookie(t, 1))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, store.authors, int64(10))
}

func TestCreateOrderIsPublic(t *testing.T) {
	store := newCatalogStore()
	h := newTestHandler(t, store, nil)

	body := `{"customer_name": "Mary Wanjiku", "phone_number": "+254712345678", "items": [{"book": 1, "quantity": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusCreated, res.Code)
	require.Len(t, store.orders, 1)
	assert.Equal(t, domain.OrderPending, store.orders[0].Status)
	assert.NotEmpty(t, store.orders[0].Reference)
}

func TestCreateOrderOutOfStock(t *testing.T) {
	store := newCatalogStore()
	store.stockOut = true
	h := newTestHandler(t, store, nil)

	body := `{"customer_name": "Mary Wanjiku", "phone_number": "+254712345678", "items": [{"book": 1, "quantity": 99}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.Equal(t, "Not enough stock to fulfill this order.", resp["message"])
}

func TestCreateOrderRequiresItems(t *testing.T) {
	h := newTestHandler(t, newCatalogStore(), nil)

	body := `{"customer_name": "Mary Wanjiku", "phone_number": "+254712345678", "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	res := httptest.NewRecorder()
	h.Mux.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}
