package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/internal/repo"
	"github.com/mkravets/commerce-api/internal/transport"
)

type OrderService struct {
	Store *repo.OrderStore
}

func validateOrderHeader(customerID uint, req transport.CreateOrderRequest) error {
	if customerID == 0 {
		return fmt.Errorf("%w: customer_id required", ErrValidation)
	}
	if !req.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: total_amount must be > 0", ErrValidation)
	}
	if req.ShippingAddress != nil && len(*req.ShippingAddress) > 500 {
		return fmt.Errorf("%w: shipping_address at most 500 chars", ErrValidation)
	}
	return nil
}

func validateOrderItem(item transport.OrderItemRequest) error {
	if item.ProductID == 0 {
		return fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	if !item.UnitPrice.IsPositive() {
		return fmt.Errorf("%w: unit_price must be > 0", ErrValidation)
	}
	return nil
}

// CreateOrder validates the submission, stamps the order date, defaults
// the status and hands the aggregate to the store. Whether the customer
// exists is left to the store's foreign key.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if err := validateOrderHeader(req.CustomerID, req); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if err := validateOrderItem(it); err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		OrderDate:       time.Now().UTC(),
		TotalAmount:     req.TotalAmount,
		Status:          status,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	}

	order, err := s.Store.Create(ctx, order)
	if err != nil {
		return nil, fromStore(err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	return s.Store.List(ctx)
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.Store.ListByCustomer(ctx, customerID)
}

func (s *OrderService) GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return s.Store.ListByStatus(ctx, status)
}

// UpdateOrder touches the header only; items never change through this
// path. The path id must match the body id.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, req transport.UpdateOrderRequest) error {
	if id != req.OrderID {
		return fmt.Errorf("%w: order ID mismatch", ErrValidation)
	}
	if !req.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: total_amount must be > 0", ErrValidation)
	}
	if req.Status == "" {
		return fmt.Errorf("%w: status required", ErrValidation)
	}
	if req.ShippingAddress != nil && len(*req.ShippingAddress) > 500 {
		return fmt.Errorf("%w: shipping_address at most 500 chars", ErrValidation)
	}

	order := &models.Order{
		OrderID:         req.OrderID,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		ShippingAddress: req.ShippingAddress,
	}

	if err := s.Store.Update(ctx, order); err != nil {
		return fromStore(err)
	}
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
