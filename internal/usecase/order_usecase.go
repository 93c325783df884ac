package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyOrderItems    = errors.New("order has no line items")
	ErrInvalidQuantity    = errors.New("invalid line item quantity")
)

// IOrderUseCase exposes order intake and lifecycle operations.
//
// Checkout calls CreateOrder; staff dashboards drive UpdateStatus. Orders
// are never deleted, so the analytics views always see the full history.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.RestaurantID = strings.TrimSpace(o.RestaurantID)
	if o.RestaurantID == "" {
		return entities.Order{}, ErrInvalidRestaurantID
	}
	if len(o.Items) == 0 {
		return entities.Order{}, ErrEmptyOrderItems
	}
	for _, it := range o.Items {
		if it.Quantity <= 0 {
			return entities.Order{}, ErrInvalidQuantity
		}
	}

	if o.Status == "" {
		o.Status = entities.OrderStatusPending
	}
	if !o.Status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if o.OrderType == "" {
		o.OrderType = entities.OrderTypeDineIn
	}

	// The stored total is authoritative from here on. When checkout did not
	// send one, derive it once from the line item snapshots.
	if !o.TotalAmount.IsPositive() {
		total := decimal.Zero
		for _, it := range o.Items {
			if it.PriceAtTime.IsPositive() {
				total = total.Add(it.PriceAtTime.Mul(decimal.NewFromInt(int64(it.Quantity))))
			}
		}
		o.TotalAmount = total
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now
	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
		o.Items[i].OrderID = o.ID
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed restaurant_id=%s err=%v", o.RestaurantID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s restaurant_id=%s total=%s", created.ID, created.RestaurantID, created.TotalAmount)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, ErrInvalidRestaurantID
	}
	return u.repo.ListByRestaurantID(ctx, restaurantID)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		log.Printf("[order][usecase] status update failed order_id=%s status=%s err=%v", id, status, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status update success order_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
