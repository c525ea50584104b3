package transport

import "github.com/shopspring/decimal"

type CreateCustomerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type UpdateCustomerRequest struct {
	CustomerID uint    `json:"customer_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      *string         `json:"category"`
	IsActive      *bool           `json:"is_active"`
}

type UpdateProductRequest struct {
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      *string         `json:"category"`
	IsActive      bool            `json:"is_active"`
}

type OrderItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateOrderRequest struct {
	CustomerID      uint               `json:"customer_id"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Status          string             `json:"status"`
	ShippingAddress *string            `json:"shipping_address"`
	Items           []OrderItemRequest `json:"order_items"`
}

type UpdateOrderRequest struct {
	OrderID         uint            `json:"order_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress *string         `json:"shipping_address"`
}
