package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/commerce-api/internal/service"
	"github.com/mkravets/commerce-api/internal/transport"
	"github.com/mkravets/commerce-api/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Svc.GetOrders(ctx)
	if err != nil {
		return serviceError(l, "get_orders_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	order, err := h.Svc.GetOrder(ctx, uint(id))
	if err != nil {
		return serviceError(l, "get_order_error", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) GetOrdersByCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders_by_customer")

	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		l.Warn("get_orders_by_customer_error", "status", 400, "reason", "customer id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "customer id is not integer")
	}

	orders, err := h.Svc.GetOrdersByCustomer(ctx, uint(customerID))
	if err != nil {
		return serviceError(l, "get_orders_by_customer_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrdersByStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders_by_status")

	orders, err := h.Svc.GetOrdersByStatus(ctx, c.Param("status"))
	if err != nil {
		return serviceError(l, "get_orders_by_status_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		return serviceError(l, "create_order_error", err)
	}

	l.Info("create_order_success")
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateOrder(ctx, uint(id), req); err != nil {
		return serviceError(l, "update_order_error", err)
	}

	l.Info("update_order_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteOrder(ctx, uint(id)); err != nil {
		return serviceError(l, "delete_order_error", err)
	}

	l.Info("delete_order_success")
	return c.NoContent(http.StatusNoContent)
}
