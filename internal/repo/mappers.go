package repo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkravets/commerce-api/internal/models"
)

// orderRow is the flat scan target for the header query (orders joined
// with customers).
type orderRow struct {
	OrderID         uint
	CustomerID      uint
	OrderDate       time.Time
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress *string
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Address         *string
	CreatedDate     time.Time
}

// orderItemRow is the flat scan target for the items query (order_items
// joined with products). The product columns are a partial projection:
// the join carries name/description/category only.
type orderItemRow struct {
	OrderItemID uint
	OrderID     uint
	ProductID   uint
	Quantity    int
	UnitPrice   decimal.Decimal
	Name        string
	Description *string
	Category    *string
}

func mapOrder(r orderRow) *models.Order {
	return &models.Order{
		OrderID:         r.OrderID,
		CustomerID:      r.CustomerID,
		OrderDate:       r.OrderDate,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		ShippingAddress: r.ShippingAddress,
		Customer: &models.Customer{
			CustomerID:  r.CustomerID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
			Phone:       r.Phone,
			Address:     r.Address,
			CreatedDate: r.CreatedDate,
		},
		Items: make([]models.OrderItem, 0),
	}
}

func mapOrderItem(r orderItemRow) models.OrderItem {
	return models.OrderItem{
		OrderItemID: r.OrderItemID,
		OrderID:     r.OrderID,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Product: &models.Product{
			ProductID:   r.ProductID,
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
		},
	}
}
