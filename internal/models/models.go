package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status a new order starts in. Further states
// are free-form and written by callers.
const OrderStatusPending = "Pending"

type Customer struct {
	CustomerID  uint      `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	FirstName   string    `gorm:"size:100;not null"        json:"first_name"`
	LastName    string    `gorm:"size:100;not null"        json:"last_name"`
	Email       string    `gorm:"size:255;not null;index"  json:"email"`
	Phone       *string   `gorm:"size:20"                  json:"phone,omitempty"`
	Address     *string   `gorm:"size:500"                 json:"address,omitempty"`
	CreatedDate time.Time `gorm:"not null"                 json:"created_date"`
}

type Product struct {
	ProductID     uint            `gorm:"primaryKey;autoIncrement"             json:"product_id"`
	Name          string          `gorm:"size:200;not null"                    json:"name"`
	Description   *string         `gorm:"size:1000"                            json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"          json:"price"`
	StockQuantity int             `gorm:"not null;check:stock_quantity >= 0"   json:"stock_quantity"`
	Category      *string         `gorm:"size:100;index"                       json:"category,omitempty"`
	CreatedDate   time.Time       `gorm:"not null"                             json:"created_date"`
	IsActive      bool            `gorm:"not null"                             json:"is_active"`
}

// Order is the aggregate root; Items are persisted and deleted together
// with the header, never on their own.
type Order struct {
	OrderID         uint            `gorm:"primaryKey;autoIncrement"                json:"order_id"`
	CustomerID      uint            `gorm:"not null;index"                          json:"customer_id"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	OrderDate       time.Time       `gorm:"not null;index"                          json:"order_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"             json:"total_amount"`
	Status          string          `gorm:"size:50;not null"                        json:"status"`
	ShippingAddress *string         `gorm:"size:500"                                json:"shipping_address,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;references:OrderID"   json:"order_items"`
}

type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey;autoIncrement"                   json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index"                             json:"order_id"`
	ProductID   uint            `gorm:"not null"                                   json:"product_id"`
	Product     *Product        `gorm:"foreignKey:ProductID;references:ProductID"  json:"product,omitempty"`
	Quantity    int             `gorm:"not null;check:quantity > 0"                json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"                json:"unit_price"`
}
