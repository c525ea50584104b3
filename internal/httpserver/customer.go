package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/commerce-api/internal/service"
	"github.com/mkravets/commerce-api/internal/transport"
	"github.com/mkravets/commerce-api/pkg/logging"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customers")

	customers, err := h.Svc.GetCustomers(ctx)
	if err != nil {
		return serviceError(l, "get_customers_error", err)
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_customer_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	customer, err := h.Svc.GetCustomer(ctx, uint(id))
	if err != nil {
		return serviceError(l, "get_customer_error", err)
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) GetCustomerByEmail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer_by_email")

	customer, err := h.Svc.GetCustomerByEmail(ctx, c.Param("email"))
	if err != nil {
		return serviceError(l, "get_customer_by_email_error", err)
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create_customer")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		return serviceError(l, "create_customer_error", err)
	}

	l.Info("create_customer_success")
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update_customer")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateCustomer(ctx, uint(id), req); err != nil {
		return serviceError(l, "update_customer_error", err)
	}

	l.Info("update_customer_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete_customer")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_customer_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteCustomer(ctx, uint(id)); err != nil {
		return serviceError(l, "delete_customer_error", err)
	}

	l.Info("delete_customer_success")
	return c.NoContent(http.StatusNoContent)
}
