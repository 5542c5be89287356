// internal/core/services/order.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

const (
	orderIndexStatus = "status"
	orderIndexType   = "type"

	orderNumberAttempts = 5
)

// OrderService drives the order lifecycle. Every status move is checked
// against the transition table and its inventory side effects run before
// the new status is persisted, so a rejected stock operation leaves the
// order untouched.
type OrderService struct {
	repo        ports.OrderRepository
	suppliers   ports.SupplierRepository
	customers   ports.CustomerRepository
	locations   ports.LocationRepository
	products    ports.ProductRepository
	inventory   ports.InventoryService
	store       *Store[domain.Order]
	invalidator ports.StoreInvalidator
	refresher   *Refresher
	logger      *slog.Logger
}

// Statically assert that *OrderService implements the OrderService port.
var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service.
func NewOrderService(
	repo ports.OrderRepository,
	suppliers ports.SupplierRepository,
	customers ports.CustomerRepository,
	locations ports.LocationRepository,
	products ports.ProductRepository,
	inventory ports.InventoryService,
	invalidator ports.StoreInvalidator,
	logger *slog.Logger,
) *OrderService {
	s := &OrderService{
		repo:        repo,
		suppliers:   suppliers,
		customers:   customers,
		locations:   locations,
		products:    products,
		inventory:   inventory,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "orders")),
	}
	s.store = NewStore(
		func(o domain.Order) int64 { return o.ID },
		IndexSpec[domain.Order]{Name: orderIndexStatus, Key: func(o domain.Order) string { return string(o.Status) }},
		IndexSpec[domain.Order]{Name: orderIndexType, Key: func(o domain.Order) string { return string(o.Type) }},
	)
	s.refresher = NewRefresher("orders", s.reloadStore, s.logger)
	return s
}

func (s *OrderService) reloadStore(ctx context.Context) error {
	res := s.GetAllActive(ctx)
	if !res.Success {
		return errors.New(res.ErrorMessage)
	}
	return nil
}

// GetByID retrieves an order with its items from the database.
func (s *OrderService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Order] {
	res := Execute(ctx, s.logger, "get order", false, func(ctx context.Context) (*domain.Order, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Order](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Order](ports.CodeNotFound, fmt.Sprintf("order %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// List returns a page of orders matching params.
func (s *OrderService) List(ctx context.Context, params ports.OrderListParams) ports.Result[ports.Page[domain.Order]] {
	params.PageParams = params.Normalized()

	type listed struct {
		orders []domain.Order
		total  int64
	}
	res := Execute(ctx, s.logger, "list orders", true, func(ctx context.Context) (listed, error) {
		orders, total, err := s.repo.List(ctx, params)
		return listed{orders, total}, err
	})
	if !res.Success {
		return ports.FailFrom[ports.Page[domain.Order]](res)
	}
	return ports.Ok(ports.NewPage(res.Data.orders, params.PageParams, res.Data.total))
}

// GetAllActive fetches every active order and reseeds the store.
func (s *OrderService) GetAllActive(ctx context.Context) ports.Result[[]domain.Order] {
	res := Execute(ctx, s.logger, "load active orders", true, func(ctx context.Context) ([]domain.Order, error) {
		return s.repo.FindAll(ctx, false)
	})
	if !res.Success {
		return res
	}
	s.store.Initialize(res.Data)
	s.logger.DebugContext(ctx, "order store reloaded", slog.Int("count", len(res.Data)))
	return res
}

// Create validates and persists a new order in draft status. Totals are
// recomputed from quantity and unit price; any supplied totals are
// discarded.
func (s *OrderService) Create(ctx context.Context, params ports.CreateOrderParams) ports.Result[domain.Order] {
	now := time.Now()
	order := domain.Order{
		Type:         params.Type,
		Status:       domain.StatusDraft,
		SupplierID:   params.SupplierID,
		CustomerID:   params.CustomerID,
		LocationID:   params.LocationID,
		DeliveryDate: params.DeliveryDate,
		Notes:        params.Notes,
		Items:        itemsFromParams(params.Items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order = order.Recalculate()

	if violations := order.Validate(); len(violations) > 0 {
		return validationFailure[domain.Order](violations)
	}
	if res := s.checkReferences(ctx, order); !res.Success {
		return ports.FailFrom[domain.Order](res)
	}

	number, res := s.nextOrderNumber(ctx, order.Type)
	if !res.Success {
		return ports.FailFrom[domain.Order](res)
	}
	order.Number = number

	saved := Execute(ctx, s.logger, "create order", true, func(ctx context.Context) (domain.Order, error) {
		err := s.repo.Save(ctx, &order)
		return order, err
	})
	if !saved.Success {
		return saved
	}

	if !s.store.Insert(saved.Data) {
		warnStoreMiss(ctx, s.logger, "insert order", saved.Data.ID)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)

	s.logger.InfoContext(ctx, "order created",
		slog.Int64("id", saved.Data.ID),
		slog.String("number", saved.Data.Number),
		slog.String("type", string(saved.Data.Type)))
	return saved
}

// Update replaces the details and line items of a draft order. Orders
// past draft have inventory consequences and can no longer be edited.
func (s *OrderService) Update(ctx context.Context, id int64, params ports.UpdateOrderParams) ports.Result[domain.Order] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}
	if current.Data.Status != domain.StatusDraft {
		return ports.Fail[domain.Order](ports.CodeConstraintViolation,
			fmt.Sprintf("order %s is %s; only draft orders can be edited", current.Data.Number, current.Data.Status))
	}

	updated := current.Data.
		WithDetails(params.DeliveryDate, params.Notes).
		WithItems(itemsFromParams(params.Items))

	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Order](violations)
	}
	if res := s.checkProductsExist(ctx, updated.Items); !res.Success {
		return ports.FailFrom[domain.Order](res)
	}

	res := Execute(ctx, s.logger, "update order", true, func(ctx context.Context) (domain.Order, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Update(res.Data) {
		warnStoreMiss(ctx, s.logger, "update order", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)
	return res
}

// ChangeStatus moves an order through its lifecycle. Illegal moves are
// rejected with a descriptive reason before any inventory side effect.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) ports.Result[domain.Order] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}
	order := current.Data

	if err := domain.TransitionError(order.Status, status); err != nil {
		return ports.Fail[domain.Order](ports.CodeValidationFailure,
			fmt.Sprintf("order %s: %s", order.Number, err.Error()))
	}

	// Stock first, status second: a rejected reservation or fulfillment
	// must leave the order in its current status.
	reserved := false
	switch status {
	case domain.StatusActive:
		if order.Type == domain.OrderSale {
			if res := s.inventory.ReserveForOrder(ctx, order); !res.Success {
				return ports.FailFrom[domain.Order](res)
			}
			reserved = true
		}
	case domain.StatusFulfilled:
		if res := s.inventory.FulfillOrder(ctx, order); !res.Success {
			return ports.FailFrom[domain.Order](res)
		}
	case domain.StatusCancelled:
		if order.Status == domain.StatusActive && order.Type == domain.OrderSale {
			if res := s.inventory.ReleaseForOrder(ctx, order); !res.Success {
				return ports.FailFrom[domain.Order](res)
			}
		}
	}

	updated := order.WithStatus(status)
	res := Execute(ctx, s.logger, "update order status", true, func(ctx context.Context) (domain.Order, error) {
		return updated, s.repo.UpdateStatus(ctx, id, status)
	})
	if !res.Success {
		if reserved {
			// Undo the reservation so stock is not held for an order that
			// never activated. Best effort; a failure here is an
			// operator-visible inconsistency.
			if rel := s.inventory.ReleaseForOrder(ctx, order); !rel.Success {
				s.logger.ErrorContext(ctx, "failed to release reservation after status write failure",
					slog.Int64("order_id", id),
					slog.String("error", rel.ErrorMessage))
			}
		}
		return res
	}

	if !s.store.Update(res.Data) {
		warnStoreMiss(ctx, s.logger, "update order", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)

	s.logger.InfoContext(ctx, "order status changed",
		slog.Int64("id", id),
		slog.String("number", order.Number),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)))
	return res
}

// SoftDelete marks an order deleted. Orders with live inventory holds
// (active or fulfilled) must be cancelled or completed first.
func (s *OrderService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}
	switch current.Data.Status {
	case domain.StatusActive, domain.StatusFulfilled:
		return ports.Fail[ports.Unit](ports.CodeConstraintViolation,
			fmt.Sprintf("order %s is %s and holds inventory; cancel or complete it first",
				current.Data.Number, current.Data.Status))
	}

	res := Execute(ctx, s.logger, "soft delete order", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if !res.Success {
		return res
	}

	if !s.store.Remove(id) {
		warnStoreMiss(ctx, s.logger, "remove order", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)

	s.logger.InfoContext(ctx, "order soft deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// Restore clears the soft-delete mark on an order.
func (s *OrderService) Restore(ctx context.Context, id int64) ports.Result[domain.Order] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Order](ports.CodeInvalidInput, fmt.Sprintf("order %d is not deleted", id))
	}

	restored := current.Data.AsRestored()
	res := Execute(ctx, s.logger, "restore order", true, func(ctx context.Context) (domain.Order, error) {
		return restored, s.repo.Restore(ctx, id)
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert order", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)

	s.logger.InfoContext(ctx, "order restored", slog.Int64("id", id))
	return res
}

// HardDelete permanently removes an order and its items. Movement
// history referencing the order surfaces as a foreign key failure.
func (s *OrderService) HardDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	res := Execute(ctx, s.logger, "hard delete order", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.Delete(ctx, id)
	})
	if !res.Success {
		return res
	}

	s.store.Remove(id)
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindOrders)

	s.logger.InfoContext(ctx, "order hard deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// BulkSoftDelete soft deletes each ID, aggregating per-ID failures.
func (s *OrderService) BulkSoftDelete(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[ports.Unit] {
		return s.SoftDelete(ctx, id)
	}))
}

// BulkRestore restores each ID, aggregating per-ID failures.
func (s *OrderService) BulkRestore(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[domain.Order] {
		return s.Restore(ctx, id)
	}))
}

// Store-backed synchronous reads.

// CachedByID returns the order from the in-memory store.
func (s *OrderService) CachedByID(id int64) (domain.Order, bool) {
	return s.store.GetByID(id)
}

// CachedByStatus returns the active orders in a lifecycle status.
func (s *OrderService) CachedByStatus(status domain.OrderStatus) []domain.Order {
	return s.store.GetAllByKey(orderIndexStatus, string(status))
}

// CachedByType returns the active orders of a type.
func (s *OrderService) CachedByType(orderType domain.OrderType) []domain.Order {
	return s.store.GetAllByKey(orderIndexType, string(orderType))
}

// CachedCount returns the number of active orders in the store.
func (s *OrderService) CachedCount() int {
	return s.store.Count()
}

// RefreshCache kicks a non-blocking, single-flight store reload.
func (s *OrderService) RefreshCache() {
	s.refresher.Trigger()
}

func itemsFromParams(params []ports.OrderItemParams) []domain.OrderItem {
	items := make([]domain.OrderItem, len(params))
	for i, p := range params {
		items[i] = domain.OrderItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		}
	}
	return items
}

// checkReferences verifies the counterparty, location, and every line
// item product exist and are active.
func (s *OrderService) checkReferences(ctx context.Context, order domain.Order) ports.Result[ports.Unit] {
	loc := Execute(ctx, s.logger, "check order location", true, func(ctx context.Context) (*domain.Location, error) {
		return s.locations.FindByID(ctx, order.LocationID, false)
	})
	if !loc.Success {
		return ports.FailFrom[ports.Unit](loc)
	}
	if loc.Data == nil {
		return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
			fmt.Sprintf("location %d does not exist or is deleted", order.LocationID))
	}

	if order.SupplierID != nil {
		sup := Execute(ctx, s.logger, "check order supplier", true, func(ctx context.Context) (*domain.Supplier, error) {
			return s.suppliers.FindByID(ctx, *order.SupplierID, false)
		})
		if !sup.Success {
			return ports.FailFrom[ports.Unit](sup)
		}
		if sup.Data == nil {
			return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
				fmt.Sprintf("supplier %d does not exist or is deleted", *order.SupplierID))
		}
	}
	if order.CustomerID != nil {
		cus := Execute(ctx, s.logger, "check order customer", true, func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.FindByID(ctx, *order.CustomerID, false)
		})
		if !cus.Success {
			return ports.FailFrom[ports.Unit](cus)
		}
		if cus.Data == nil {
			return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
				fmt.Sprintf("customer %d does not exist or is deleted", *order.CustomerID))
		}
	}

	return s.checkProductsExist(ctx, order.Items)
}

func (s *OrderService) checkProductsExist(ctx context.Context, items []domain.OrderItem) ports.Result[ports.Unit] {
	for _, it := range items {
		productID := it.ProductID
		res := Execute(ctx, s.logger, "check order product", true, func(ctx context.Context) (*domain.Product, error) {
			return s.products.FindByID(ctx, productID, false)
		})
		if !res.Success {
			return ports.FailFrom[ports.Unit](res)
		}
		if res.Data == nil {
			return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
				fmt.Sprintf("product %d does not exist or is deleted", productID))
		}
	}
	return ports.OkUnit()
}

// nextOrderNumber generates a prefixed order number and verifies it is
// unused. Collisions on the random suffix are effectively impossible but
// the check keeps the uniqueness guarantee explicit.
func (s *OrderService) nextOrderNumber(ctx context.Context, orderType domain.OrderType) (string, ports.Result[ports.Unit]) {
	prefix := "SO"
	if orderType == domain.OrderPurchase {
		prefix = "PO"
	}
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
		res := Execute(ctx, s.logger, "check order number", true, func(ctx context.Context) (bool, error) {
			return s.repo.NumberExists(ctx, number, 0)
		})
		if !res.Success {
			return "", ports.FailFrom[ports.Unit](res)
		}
		if !res.Data {
			return number, ports.OkUnit()
		}
	}
	return "", ports.Fail[ports.Unit](ports.CodeUnexpectedError, "could not allocate a unique order number")
}
