package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/peter-evance/bookspace/backend/internal/config"
	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
	"github.com/peter-evance/bookspace/backend/internal/service"
)

// Store is everything the HTTP layer needs from the data store. Implemented
// by *repository.Repository; tests substitute stubs.
type Store interface {
	CreateUser(user *domain.User) error
	GetUserByID(id int64) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	GetAllUsers() ([]*domain.User, error)
	UpdateUser(user *domain.User) error
	DeleteUser(id int64) error
	UsernameExists(username string) (bool, error)

	CreateAuthor(author *domain.Author) error
	GetAuthorByID(id int64) (*domain.Author, error)
	GetAllAuthors(filter repository.AuthorFilter) ([]*domain.Author, error)
	UpdateAuthor(author *domain.Author) error
	DeleteAuthor(id int64) error

	CreateBookTag(tag *domain.BookTag) error
	GetBookTagByID(id int64) (*domain.BookTag, error)
	GetAllBookTags(filter repository.BookTagFilter) ([]*domain.BookTag, error)
	UpdateBookTag(tag *domain.BookTag) error
	DeleteBookTag(id int64) error

	CreateBook(book *domain.Book) error
	GetBookByID(id int64) (*domain.Book, error)
	GetAllBooks(filter repository.BookFilter) ([]*domain.Book, error)
	UpdateBook(book *domain.Book) error
	DeleteBook(id int64) error

	CreateBookImage(image *domain.BookImage) error
	GetBookImageByID(id int64) (*domain.BookImage, error)
	GetBookImagesByBookID(bookID int64) ([]*domain.BookImage, error)
	UpdateBookImage(image *domain.BookImage) error
	DeleteBookImage(id int64) error

	CreateOrder(order *domain.Order) error
	GetOrderByID(id int64) (*domain.Order, error)
	GetAllOrders() ([]*domain.Order, error)
	UpdateOrderStatus(order *domain.Order) error

	GetBookInventory(bookID int64) (*domain.BookInventory, error)
	SetBookStock(inventory *domain.BookInventory) error
	AdjustBookStock(bookID int64, delta int32) (*domain.BookInventory, error)
}

// MailPublisher matches (*amqp.Channel).PublishWithContext.
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	store       Store
	roles       *service.RoleService
	translator  ut.Translator
	mailChannel MailPublisher
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store Store, mailCh MailPublisher, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		store:       store,
		roles:       service.NewRoleService(store),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Handle("/metrics", promhttp.Handler())

	// public auth endpoints, rate limited per client IP
	h.Mux.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.config.RateLimit.Requests, time.Duration(h.config.RateLimit.Window)*time.Second))

		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)
		r.Post("/auth/reset-password/require", h.RequireResetPassword)
		r.Post("/auth/reset-password/confirm", h.ConfirmResetPassword)
		r.Post("/users/generate-username", h.GenerateUsername)
	})

	// public catalog and checkout
	h.Mux.Get("/books", h.GetAllBooks)
	h.Mux.With(h.bookInfo).Get("/books/{id}", h.GetBook)
	h.Mux.With(h.bookInfo).Get("/books/{id}/images", h.GetBookImages)
	h.Mux.With(h.bookImageInfo).Get("/book-images/{id}", h.GetBookImage)
	h.Mux.Post("/orders", h.CreateOrder)

	// everything below requires a logged-in principal
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/my-info", h.GetMyInfo)
		r.Patch("/my-info/password", h.UpdateMyPassword)

		r.With(h.requirePermission("users", "list")).Get("/users", h.GetAllUserInfo)
		r.With(h.userInfo, h.requirePermission("users", "get")).Get("/users/{id}", h.GetUserInfo)
		r.With(h.userInfo, h.requirePermission("users", "update")).Patch("/users/{id}", h.UpdateUser)
		r.With(h.userInfo, h.requirePermission("users", "delete")).Delete("/users/{id}", h.DeleteUser)

		r.With(h.requirePermission("roles", "assign-owner")).
			Post("/users/assign-bookspace-owner", h.roleChangeHandler(domain.AssignOwnerChange, "assign", "owner"))
		r.With(h.requirePermission("roles", "assign-manager")).
			Post("/users/assign-bookspace-manager", h.roleChangeHandler(domain.AssignManagerChange, "assign", "manager"))
		r.With(h.requirePermission("roles", "assign-assistant-manager")).
			Post("/users/assign-assistant-bookspace-manager", h.roleChangeHandler(domain.AssignAssistantManagerChange, "assign", "assistant_manager"))
		r.With(h.requirePermission("roles", "assign-worker")).
			Post("/users/assign-bookspace-worker", h.roleChangeHandler(domain.AssignWorkerChange, "assign", "worker"))
		r.With(h.requirePermission("roles", "dismiss-manager")).
			Post("/users/dismiss-bookspace-manager", h.roleChangeHandler(domain.DismissManagerChange, "dismiss", "manager"))
		r.With(h.requirePermission("roles", "dismiss-assistant-manager")).
			Post("/users/dismiss-assistant-bookspace-manager", h.roleChangeHandler(domain.DismissAssistantManagerChange, "dismiss", "assistant_manager"))
		r.With(h.requirePermission("roles", "dismiss-worker")).
			Post("/users/dismiss-bookspace-worker", h.roleChangeHandler(domain.DismissWorkerChange, "dismiss", "worker"))

		r.With(h.requirePermission("authors", "create")).Post("/authors", h.CreateAuthor)
		r.With(h.requirePermission("authors", "list")).Get("/authors", h.GetAllAuthors)
		r.With(h.authorInfo, h.requirePermission("authors", "get")).Get("/authors/{id}", h.GetAuthor)
		r.With(h.authorInfo, h.requirePermission("authors", "update")).Patch("/authors/{id}", h.UpdateAuthor)
		r.With(h.authorInfo, h.requirePermission("authors", "delete")).Delete("/authors/{id}", h.DeleteAuthor)

		r.With(h.requirePermission("tags", "create")).Post("/book-tags", h.CreateBookTag)
		r.With(h.requirePermission("tags", "list")).Get("/book-tags", h.GetAllBookTags)
		r.With(h.bookTagInfo, h.requirePermission("tags", "get")).Get("/book-tags/{id}", h.GetBookTag)
		r.With(h.bookTagInfo, h.requirePermission("tags", "update")).Patch("/book-tags/{id}", h.UpdateBookTag)
		r.With(h.bookTagInfo, h.requirePermission("tags", "delete")).Delete("/book-tags/{id}", h.DeleteBookTag)

		r.With(h.requirePermission("books", "create")).Post("/books", h.CreateBook)
		r.With(h.bookInfo, h.requirePermission("books", "update")).Patch("/books/{id}", h.UpdateBook)
		r.With(h.bookInfo, h.requirePermission("books", "delete")).Delete("/books/{id}", h.DeleteBook)

		r.With(h.requirePermission("book-images", "create")).Post("/book-images", h.CreateBookImage)
		r.With(h.bookImageInfo, h.requirePermission("book-images", "update")).Patch("/book-images/{id}", h.UpdateBookImage)
		r.With(h.bookImageInfo, h.requirePermission("book-images", "delete")).Delete("/book-images/{id}", h.DeleteBookImage)

		r.With(h.requirePermission("orders", "list")).Get("/orders", h.GetAllOrders)
		r.With(h.orderInfo, h.requirePermission("orders", "get")).Get("/orders/{id}", h.GetOrder)
		r.With(h.orderInfo, h.requirePermission("orders", "update-status")).Patch("/orders/{id}/status", h.UpdateOrderStatus)

		r.With(h.requirePermission("inventory", "get")).Get("/inventory/{bookID}", h.GetBookInventory)
		r.With(h.requirePermission("inventory", "update")).Patch("/inventory/{bookID}", h.UpdateBookInventory)
	})
}
