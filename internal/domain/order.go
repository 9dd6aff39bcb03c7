package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID           int64       `json:"id"`
	Reference    string      `json:"reference"`
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Email        string      `json:"email"`
	Status       OrderStatus `json:"status"`
	TotalAmount  string      `json:"totalAmount"`
	Notes        string      `json:"notes"`
	Items        []OrderItem `json:"items"`
	OrderDate    time.Time   `json:"orderDate"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order"`
	BookID      int64  `json:"book"`
	Quantity    int32  `json:"quantity"`
	PriceAtTime string `json:"priceAtTime"`
}
