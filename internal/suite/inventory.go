package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Inventory() Suite {
	var item *model.InventoryItem

	return Suite{
		Name: "inventory",
		Checks: []Check{
			{Name: "create item", Run: func(ctx context.Context, env *Env) error {
				created, err := env.Client.CreateInventoryItem(ctx, model.CreateInventoryItemRequest{
					SKU:          env.Fix.SKU(),
					Name:         "Nitrile gloves (box)",
					Quantity:     20,
					UnitPrice:    1299,
					ReorderLevel: 5,
				})
				if err != nil {
					return err
				}
				item = created
				return expectf(item.Quantity == 20, "quantity: got %d", item.Quantity)
			}},
			{Name: "duplicate sku rejected", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				_, err := env.Client.CreateInventoryItem(ctx, model.CreateInventoryItemRequest{
					SKU: item.SKU, Name: "dup", Quantity: 1,
				})
				return expectRejected(err, "duplicate SKU")
			}},
			{Name: "negative adjustment decrements stock", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				updated, err := env.Client.AdjustStock(ctx, item.ID, model.AdjustStockRequest{
					Delta: -16, Reason: "dispensed",
				})
				if err != nil {
					return err
				}
				return expectf(updated.Quantity == 4, "quantity after adjustment: got %d", updated.Quantity)
			}},
			{Name: "adjustment below zero rejected", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				_, err := env.Client.AdjustStock(ctx, item.ID, model.AdjustStockRequest{Delta: -100})
				return expectRejected(err, "adjustment below zero")
			}},
			{Name: "low stock listing includes item", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				// Quantity is 4 with reorder level 5 at this point.
				items, err := env.Client.ListLowStock(ctx)
				if err != nil {
					return err
				}
				for _, it := range items {
					if it.ID == item.ID {
						return nil
					}
				}
				return expectf(false, "item below reorder level missing from low-stock list")
			}},
			{Name: "restock clears low-stock flag", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				if _, err := env.Client.AdjustStock(ctx, item.ID, model.AdjustStockRequest{Delta: 50, Reason: "restock"}); err != nil {
					return err
				}
				items, err := env.Client.ListLowStock(ctx)
				if err != nil {
					return err
				}
				for _, it := range items {
					if it.ID == item.ID {
						return expectf(false, "restocked item still listed as low stock")
					}
				}
				return nil
			}},
			{Name: "update reorder level", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return expectf(false, "item fixture missing")
				}
				level := 10
				updated, err := env.Client.UpdateInventoryItem(ctx, item.ID, model.UpdateInventoryItemRequest{ReorderLevel: &level})
				if err != nil {
					return err
				}
				return expectf(updated.ReorderLevel == 10, "reorder level: got %d", updated.ReorderLevel)
			}},
		},
		Cleanup: []Check{
			{Name: "delete item", Run: func(ctx context.Context, env *Env) error {
				if item == nil {
					return nil
				}
				return env.Client.DeleteInventoryItem(ctx, item.ID)
			}},
		},
	}
}
