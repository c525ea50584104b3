package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/commerce-api/internal/service"
	"github.com/mkravets/commerce-api/internal/transport"
	"github.com/mkravets/commerce-api/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetProducts(ctx)
	if err != nil {
		return serviceError(l, "get_products_error", err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return serviceError(l, "get_product_error", err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products_by_category")

	products, err := h.Svc.GetProductsByCategory(ctx, c.Param("category"))
	if err != nil {
		return serviceError(l, "get_products_by_category_error", err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetActiveProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_active_products")

	products, err := h.Svc.GetActiveProducts(ctx)
	if err != nil {
		return serviceError(l, "get_active_products_error", err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return serviceError(l, "create_product_error", err)
	}

	l.Info("create_product_success")
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateProduct(ctx, uint(id), req); err != nil {
		return serviceError(l, "update_product_error", err)
	}

	l.Info("update_product_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return serviceError(l, "delete_product_error", err)
	}

	l.Info("delete_product_success")
	return c.NoContent(http.StatusNoContent)
}
