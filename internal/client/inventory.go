package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateInventoryItem(ctx context.Context, req model.CreateInventoryItemRequest) (*model.InventoryItem, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var item model.InventoryItem
	if err := c.do(ctx, http.MethodPost, "/api/inventory", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetInventoryItem(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/api/inventory/"+id.String(), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateInventoryItem(ctx context.Context, id uuid.UUID, req model.UpdateInventoryItemRequest) (*model.InventoryItem, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var item model.InventoryItem
	if err := c.do(ctx, http.MethodPut, "/api/inventory/"+id.String(), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AdjustStock applies a signed quantity delta to an item.
func (c *Client) AdjustStock(ctx context.Context, id uuid.UUID, req model.AdjustStockRequest) (*model.InventoryItem, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var item model.InventoryItem
	if err := c.do(ctx, http.MethodPost, "/api/inventory/"+id.String()+"/adjust", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListLowStock returns items at or below their reorder level.
func (c *Client) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/api/inventory/low-stock", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/inventory/"+id.String(), nil, nil)
}
