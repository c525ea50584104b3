package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/internal/transport"
)

func TestGetCustomerByEmailHandler(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(t, http.MethodPost, "/customers", transport.CreateCustomerRequest{
		FirstName: "John", LastName: "Doe", Email: "john.doe@example.com",
	})
	require.NoError(t, env.C.CreateCustomer(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSON(t, http.MethodGet, "/customers/by-email/john.doe@example.com", nil)
	c.SetParamNames("email")
	c.SetParamValues("john.doe@example.com")
	require.NoError(t, env.C.GetCustomerByEmail(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	require.Equal(t, "John", customer.FirstName)

	_, c = env.doJSON(t, http.MethodGet, "/customers/by-email/nobody@example.com", nil)
	c.SetParamNames("email")
	c.SetParamValues("nobody@example.com")
	err := env.C.GetCustomerByEmail(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateCustomerHandler_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSON(t, http.MethodPost, "/customers", transport.CreateCustomerRequest{
		FirstName: "John",
	})
	err := env.C.CreateCustomer(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetActiveProductsHandler(t *testing.T) {
	env := newTestEnv(t)

	inactive := false
	for _, p := range []transport.CreateProductRequest{
		{Name: "Keyboard", Price: decimal.RequireFromString("10.00"), StockQuantity: 5},
		{Name: "Webcam", Price: decimal.RequireFromString("30.00"), StockQuantity: 0},
		{Name: "Desk", Price: decimal.RequireFromString("99.00"), StockQuantity: 5, IsActive: &inactive},
	} {
		rec, c := env.doJSON(t, http.MethodPost, "/products", p)
		require.NoError(t, env.P.CreateProduct(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, c := env.doJSON(t, http.MethodGet, "/products/active", nil)
	require.NoError(t, env.P.GetActiveProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Keyboard", products[0].Name)
}
