package domain

// BookInventory tracks the stock level of one book. A row is created at zero
// stock together with the book itself.
type BookInventory struct {
	BookID        int64 `json:"book"`
	StockQuantity int32 `json:"stockQuantity"`
}
