package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CustomerHandler *CustomerHTTP
	ProductHandler  *ProductHTTP
	OrderHandler    *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	customers := e.Group("/customers")
	customers.GET("", d.CustomerHandler.GetCustomers)
	customers.GET("/by-email/:email", d.CustomerHandler.GetCustomerByEmail)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.PUT("/:id", d.CustomerHandler.UpdateCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/active", d.ProductHandler.GetActiveProducts)
	products.GET("/category/:category", d.ProductHandler.GetProductsByCategory)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/customer/:customerId", d.OrderHandler.GetOrdersByCustomer)
	orders.GET("/status/:status", d.OrderHandler.GetOrdersByStatus)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
}
