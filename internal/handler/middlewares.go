package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/metrics"
)

const unauthenticatedMessage = "Authentication credentials were not provided."

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// auth resolves the cookie token into a principal loaded fresh from the
// store, so role changes take effect on the next request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("__bookspace_token")
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
				h.errorMessage(w, r, http.StatusUnauthorized, unauthenticatedMessage)
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
			h.errorMessage(w, r, http.StatusUnauthorized, "Invalid token.")
			return
		}

		sub, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusUnauthorized, "Invalid token.")
			return
		}

		principal, err := h.store.GetUserByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusUnauthorized, "Invalid token.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalCtx, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) principal(r *http.Request) *domain.User {
	return r.Context().Value(PrincipalCtx).(*domain.User)
}

func (h *Handler) userInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDParam := chi.URLParam(r, "id")
		userID, err := strconv.ParseInt(userIDParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid user ID.")
			return
		}

		user, err := h.store.GetUserByID(userID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "User not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserInfoCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authorInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid author ID.")
			return
		}

		author, err := h.store.GetAuthorByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Author not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), AuthorCtx, author)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) bookTagInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid book tag ID.")
			return
		}

		tag, err := h.store.GetBookTagByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Book tag not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), BookTagCtx, tag)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) bookInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid book ID.")
			return
		}

		book, err := h.store.GetBookByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Book not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), BookCtx, book)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) bookImageInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid book image ID.")
			return
		}

		image, err := h.store.GetBookImageByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Book image not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), BookImageCtx, image)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) orderInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.errorMessage(w, r, http.StatusBadRequest, "Invalid order ID.")
			return
		}

		order, err := h.store.GetOrderByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorMessage(w, r, http.StatusNotFound, "Order not found.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), OrderCtx, order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
