// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// InventoryService performs stock mutations and records the movement
// history. It has no in-memory store of its own: stock numbers change
// under guarded updates and must always be read from the database.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService port.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo ports.InventoryRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		logger: logger.With(slog.String("service", "inventory")),
	}
}

// GetStock returns the stock level for one product at one location.
func (s *InventoryService) GetStock(ctx context.Context, productID, locationID int64) ports.Result[ports.StockLevel] {
	res := Execute(ctx, s.logger, "get stock level", true, func(ctx context.Context) (*domain.Inventory, error) {
		return s.repo.FindByProductLocation(ctx, productID, locationID)
	})
	if !res.Success {
		return ports.FailFrom[ports.StockLevel](res)
	}
	if res.Data == nil {
		return ports.Fail[ports.StockLevel](ports.CodeNotFound,
			fmt.Sprintf("no inventory record for product %d at location %d", productID, locationID))
	}
	return ports.Ok(stockLevel(*res.Data))
}

// GetLocationStock returns every stock level at a location.
func (s *InventoryService) GetLocationStock(ctx context.Context, locationID int64) ports.Result[[]ports.StockLevel] {
	res := Execute(ctx, s.logger, "list location stock", true, func(ctx context.Context) ([]domain.Inventory, error) {
		return s.repo.FindByLocation(ctx, locationID)
	})
	if !res.Success {
		return ports.FailFrom[[]ports.StockLevel](res)
	}
	return ports.Ok(stockLevels(res.Data))
}

// GetAllStock returns every stock level across locations.
func (s *InventoryService) GetAllStock(ctx context.Context) ports.Result[[]ports.StockLevel] {
	res := Execute(ctx, s.logger, "list all stock", true, func(ctx context.Context) ([]domain.Inventory, error) {
		return s.repo.FindAll(ctx)
	})
	if !res.Success {
		return ports.FailFrom[[]ports.StockLevel](res)
	}
	return ports.Ok(stockLevels(res.Data))
}

// AdjustStock applies a manual correction and records an adjustment
// movement. Rejected if the delta would drive stock negative.
func (s *InventoryService) AdjustStock(ctx context.Context, productID, locationID int64, delta int, reference string) ports.Result[ports.StockLevel] {
	if delta == 0 {
		return ports.Fail[ports.StockLevel](ports.CodeInvalidInput, "adjustment delta cannot be zero")
	}

	adjusted := Execute(ctx, s.logger, "adjust stock", false, func(ctx context.Context) (ports.Unit, error) {
		if delta > 0 {
			// A positive correction may address a product never stocked at
			// this location. Upsert creates the row on first touch.
			err := s.repo.Upsert(ctx, &domain.Inventory{
				ProductID:  productID,
				LocationID: locationID,
				UpdatedAt:  time.Now(),
			})
			if err != nil {
				return ports.Unit{}, err
			}
		}
		return ports.Unit{}, s.repo.AdjustStock(ctx, productID, locationID, delta)
	})
	if !adjusted.Success {
		return stockFailure[ports.StockLevel](adjusted, productID, locationID)
	}

	if res := s.recordMovement(ctx, domain.InventoryMovement{
		ProductID:  productID,
		LocationID: locationID,
		Type:       domain.MovementAdjustment,
		Quantity:   delta,
		Reference:  reference,
	}); !res.Success {
		return ports.FailFrom[ports.StockLevel](res)
	}

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.Int64("product_id", productID),
		slog.Int64("location_id", locationID),
		slog.Int("delta", delta))
	return s.GetStock(ctx, productID, locationID)
}

// ListMovements returns the most recent movements for a product at a
// location, newest first.
func (s *InventoryService) ListMovements(ctx context.Context, productID, locationID int64, limit int) ports.Result[[]domain.InventoryMovement] {
	if limit <= 0 {
		limit = 50
	}
	return Execute(ctx, s.logger, "list movements", true, func(ctx context.Context) ([]domain.InventoryMovement, error) {
		return s.repo.FindMovements(ctx, productID, locationID, limit)
	})
}

// ReserveForOrder places a hold on every line of a sale order. On a
// failure mid-way, already placed holds are released so activation is
// all or nothing.
func (s *InventoryService) ReserveForOrder(ctx context.Context, order domain.Order) ports.Result[ports.Unit] {
	if order.Type != domain.OrderSale {
		return ports.OkUnit()
	}

	var placed []domain.OrderItem
	for _, it := range order.Items {
		item := it
		res := Execute(ctx, s.logger, "reserve stock", false, func(ctx context.Context) (ports.Unit, error) {
			return ports.Unit{}, s.repo.Reserve(ctx, item.ProductID, order.LocationID, item.Quantity)
		})
		if !res.Success {
			s.rollbackReservations(ctx, order, placed)
			return stockFailure[ports.Unit](res, item.ProductID, order.LocationID)
		}
		placed = append(placed, item)
	}

	s.logger.InfoContext(ctx, "stock reserved for order",
		slog.Int64("order_id", order.ID),
		slog.String("number", order.Number),
		slog.Int("lines", len(order.Items)))
	return ports.OkUnit()
}

// ReleaseForOrder drops the holds of a cancelled sale order.
func (s *InventoryService) ReleaseForOrder(ctx context.Context, order domain.Order) ports.Result[ports.Unit] {
	if order.Type != domain.OrderSale {
		return ports.OkUnit()
	}

	for _, it := range order.Items {
		item := it
		res := Execute(ctx, s.logger, "release stock", true, func(ctx context.Context) (ports.Unit, error) {
			return ports.Unit{}, s.repo.Release(ctx, item.ProductID, order.LocationID, item.Quantity)
		})
		if !res.Success {
			return res
		}
	}

	s.logger.InfoContext(ctx, "reservation released for order",
		slog.Int64("order_id", order.ID),
		slog.String("number", order.Number))
	return ports.OkUnit()
}

// FulfillOrder applies the stock consequences of fulfillment. Purchase
// orders receive goods: each line increments stock at the order location
// with an inbound movement. Sale orders ship goods: each line decrements
// stock, drops its hold, and records an outbound movement.
func (s *InventoryService) FulfillOrder(ctx context.Context, order domain.Order) ports.Result[ports.Unit] {
	for _, it := range order.Items {
		item := it
		orderID := order.ID

		var movementType domain.MovementType
		res := Execute(ctx, s.logger, "fulfill order line", false, func(ctx context.Context) (ports.Unit, error) {
			switch order.Type {
			case domain.OrderPurchase:
				movementType = domain.MovementInbound
				err := s.repo.Upsert(ctx, &domain.Inventory{
					ProductID:  item.ProductID,
					LocationID: order.LocationID,
					UpdatedAt:  time.Now(),
				})
				if err != nil {
					return ports.Unit{}, err
				}
				return ports.Unit{}, s.repo.AdjustStock(ctx, item.ProductID, order.LocationID, item.Quantity)
			default:
				movementType = domain.MovementOutbound
				if err := s.repo.Release(ctx, item.ProductID, order.LocationID, item.Quantity); err != nil {
					return ports.Unit{}, err
				}
				return ports.Unit{}, s.repo.AdjustStock(ctx, item.ProductID, order.LocationID, -item.Quantity)
			}
		})
		if !res.Success {
			return stockFailure[ports.Unit](res, item.ProductID, order.LocationID)
		}

		if res := s.recordMovement(ctx, domain.InventoryMovement{
			ProductID:  item.ProductID,
			LocationID: order.LocationID,
			OrderID:    &orderID,
			Type:       movementType,
			Quantity:   item.Quantity,
			Reference:  order.Number,
		}); !res.Success {
			return res
		}
	}

	s.logger.InfoContext(ctx, "order fulfilled against inventory",
		slog.Int64("order_id", order.ID),
		slog.String("number", order.Number),
		slog.String("type", string(order.Type)))
	return ports.OkUnit()
}

func (s *InventoryService) recordMovement(ctx context.Context, movement domain.InventoryMovement) ports.Result[ports.Unit] {
	movement.CreatedAt = time.Now()
	if violations := movement.Validate(); len(violations) > 0 {
		return validationFailure[ports.Unit](violations)
	}
	return Execute(ctx, s.logger, "record movement", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SaveMovement(ctx, &movement)
	})
}

// rollbackReservations undoes holds placed earlier in a failed
// all-or-nothing reservation pass. Best effort.
func (s *InventoryService) rollbackReservations(ctx context.Context, order domain.Order, placed []domain.OrderItem) {
	for _, it := range placed {
		if err := s.repo.Release(ctx, it.ProductID, order.LocationID, it.Quantity); err != nil {
			s.logger.ErrorContext(ctx, "failed to roll back reservation",
				slog.Int64("order_id", order.ID),
				slog.Int64("product_id", it.ProductID),
				slog.String("error", err.Error()))
		}
	}
}

// stockFailure prefixes a classified stock failure with the pair it
// concerns, so bulk callers can tell which line was rejected.
func stockFailure[T, U any](res ports.Result[U], productID, locationID int64) ports.Result[T] {
	return ports.Fail[T](res.ErrorCode,
		fmt.Sprintf("product %d at location %d: %s", productID, locationID, res.ErrorMessage))
}

func stockLevel(inv domain.Inventory) ports.StockLevel {
	return ports.StockLevel{Inventory: inv, AvailableStock: inv.AvailableStock()}
}

func stockLevels(invs []domain.Inventory) []ports.StockLevel {
	levels := make([]ports.StockLevel, len(invs))
	for i, inv := range invs {
		levels[i] = stockLevel(inv)
	}
	return levels
}
