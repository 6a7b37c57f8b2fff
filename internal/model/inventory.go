package model

type InventoryItem struct {
	Base
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	ReorderLevel int    `json:"reorder_level"`
}

type CreateInventoryItemRequest struct {
	SKU          string `json:"sku" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"min=0"`
	UnitPrice    int64  `json:"unit_price" validate:"min=0"`
	ReorderLevel int    `json:"reorder_level" validate:"min=0"`
}

type UpdateInventoryItemRequest struct {
	Name         *string `json:"name,omitempty"`
	UnitPrice    *int64  `json:"unit_price,omitempty" validate:"omitempty,min=0"`
	ReorderLevel *int    `json:"reorder_level,omitempty" validate:"omitempty,min=0"`
}

// AdjustStockRequest applies a signed delta to on-hand quantity. The server
// rejects adjustments that would take stock below zero.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason,omitempty"`
}
