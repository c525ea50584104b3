package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/pkg/logging"
)

const orderSelect = `
SELECT o.order_id, o.customer_id, o.order_date, o.total_amount, o.status, o.shipping_address,
       c.first_name, c.last_name, c.email, c.phone, c.address, c.created_date
FROM orders o
INNER JOIN customers c ON o.customer_id = c.customer_id`

const orderItemSelect = `
SELECT oi.order_item_id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
       p.name, p.description, p.category
FROM order_items oi
INNER JOIN products p ON oi.product_id = p.product_id
WHERE oi.order_id = ?`

// OrderStore persists the Order aggregate: the header row and its items
// are written and deleted inside one transaction, never partially.
type OrderStore struct {
	DB *gorm.DB
}

// Create inserts the header, then each item in collection order, inside a
// single transaction. Generated ids are assigned to the passed-in order.
// Any insert failure rolls the whole transaction back and re-signals the
// original error; a rollback failure is joined into the result.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
		return nil, rollback(tx, err)
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.OrderID
		if err := tx.Omit(clause.Associations).Create(&order.Items[i]).Error; err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order_created", "order_id", order.OrderID)
	return order, nil
}

// GetByID assembles the aggregate from two queries: the header joined with
// its customer, then the items joined with their products. The queries do
// not share a snapshot; under concurrent modification the item set may be
// newer than the header.
func (s *OrderStore) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var rows []orderRow
	if err := s.DB.WithContext(ctx).Raw(orderSelect+" WHERE o.order_id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	order := mapOrder(rows[0])

	var itemRows []orderItemRow
	if err := s.DB.WithContext(ctx).Raw(orderItemSelect, id).Scan(&itemRows).Error; err != nil {
		return nil, err
	}
	for _, r := range itemRows {
		order.Items = append(order.Items, mapOrderItem(r))
	}

	return order, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	return s.listWhere(ctx, "", nil)
}

func (s *OrderStore) ListByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.listWhere(ctx, " WHERE o.customer_id = ?", customerID)
}

func (s *OrderStore) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return s.listWhere(ctx, " WHERE o.status = ?", status)
}

// listWhere returns headers with their customers, no items. The order_id
// tiebreak keeps same-date ordering deterministic.
func (s *OrderStore) listWhere(ctx context.Context, where string, arg any) ([]models.Order, error) {
	q := orderSelect + where + " ORDER BY o.order_date DESC, o.order_id DESC"

	var rows []orderRow
	tx := s.DB.WithContext(ctx)
	var err error
	if arg != nil {
		err = tx.Raw(q, arg).Scan(&rows).Error
	} else {
		err = tx.Raw(q).Scan(&rows).Error
	}
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, *mapOrder(r))
	}
	return orders, nil
}

// Update replaces the mutable header columns only; items are untouched.
// A missing id affects zero rows and is not an error.
func (s *OrderStore) Update(ctx context.Context, order *models.Order) error {
	err := s.DB.WithContext(ctx).Model(&models.Order{}).
		Where("order_id = ?", order.OrderID).
		Updates(map[string]any{
			"total_amount":     order.TotalAmount,
			"status":           order.Status,
			"shipping_address": order.ShippingAddress,
		}).Error
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("order_updated", "order_id", order.OrderID)
	return nil
}

// Delete removes the items and then the header inside one transaction.
// A missing id deletes zero rows and is not an error.
func (s *OrderStore) Delete(ctx context.Context, id uint) error {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return rollback(tx, err)
	}
	if err := tx.Where("order_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	logging.FromContext(ctx).Info("order_deleted", "order_id", id)
	return nil
}

// rollback aborts tx and re-signals cause. A failed rollback leaves the
// store in an unknown state, so that error is surfaced alongside.
func rollback(tx *gorm.DB, cause error) error {
	if rbErr := tx.Rollback().Error; rbErr != nil {
		return errors.Join(cause, fmt.Errorf("rollback failed: %w", rbErr))
	}
	return cause
}
