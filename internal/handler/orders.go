package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/metrics"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string `json:"customer_name" validate:"required,max=100"`
		PhoneNumber  string `json:"phone_number" validate:"required,e164"`
		Email        string `json:"email" validate:"omitempty,email"`
		Notes        string `json:"notes"`
		Items        []struct {
			BookID   int64 `json:"book" validate:"required"`
			Quantity int32 `json:"quantity" validate:"required,min=1"`
		} `json:"items" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	order := &domain.Order{
		Reference:    uuid.NewString(),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Status:       domain.OrderPending,
		Notes:        req.Notes,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	if err := h.store.CreateOrder(order); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			h.errorMessage(w, r, http.StatusBadRequest, "Not enough stock to fulfill this order.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if order.Email != "" {
		if err := h.publishMail(domain.MailMessage{
			Type: "order_confirmation",
			To:   order.Email,
			Data: domain.OrderConfirmationMailData{
				CustomerName: order.CustomerName,
				Reference:    order.Reference,
				TotalAmount:  order.TotalAmount,
			},
		}); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	metrics.OrdersCreatedTotal.Inc()

	h.writeJSON(w, r, http.StatusCreated, order)
}

func (h *Handler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.GetAllOrders()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order := r.Context().Value(OrderCtx).(*domain.Order)
	h.writeJSON(w, r, http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required,oneof=PENDING PAID DELIVERED CANCELLED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	order := r.Context().Value(OrderCtx).(*domain.Order)
	order.Status = domain.OrderStatus(req.Status)

	if err := h.store.UpdateOrderStatus(order); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, order)
}
