package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/internal/repo"
	"github.com/mkravets/commerce-api/internal/transport"
)

func TestCustomerService_CreateCustomer_Validation(t *testing.T) {
	t.Parallel()

	svc := &CustomerService{}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateCustomerRequest
	}{
		{name: "empty first name", req: transport.CreateCustomerRequest{LastName: "Doe", Email: "a@b.com"}},
		{name: "empty last name", req: transport.CreateCustomerRequest{FirstName: "John", Email: "a@b.com"}},
		{name: "empty email", req: transport.CreateCustomerRequest{FirstName: "John", LastName: "Doe"}},
		{name: "invalid email", req: transport.CreateCustomerRequest{FirstName: "John", LastName: "Doe", Email: "not-an-address"}},
		{
			name: "first name too long",
			req:  transport.CreateCustomerRequest{FirstName: strings.Repeat("a", 101), LastName: "Doe", Email: "a@b.com"},
		},
		{
			name: "phone too long",
			req: transport.CreateCustomerRequest{
				FirstName: "John", LastName: "Doe", Email: "a@b.com",
				Phone: strPtr(strings.Repeat("1", 21)),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			customer, err := svc.CreateCustomer(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, customer)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCustomerService_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &CustomerService{Store: &repo.CustomerStore{DB: db}}

	customer, err := svc.CreateCustomer(ctx, transport.CreateCustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     strPtr("123-456-7890"),
	})
	require.NoError(t, err)
	require.NotZero(t, customer.CustomerID)

	byEmail, err := svc.GetCustomerByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, customer.CustomerID, byEmail.CustomerID)

	_, err = svc.GetCustomer(ctx, 4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerService_UpdateCustomer_IDMismatch(t *testing.T) {
	t.Parallel()

	svc := &CustomerService{}
	err := svc.UpdateCustomer(context.Background(), 1, transport.UpdateCustomerRequest{
		CustomerID: 2,
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "a@b.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	t.Parallel()

	svc := &ProductService{}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty name", req: transport.CreateProductRequest{}},
		{
			name: "zero price",
			req:  transport.CreateProductRequest{Name: "Keyboard"},
		},
		{
			name: "negative stock",
			req: transport.CreateProductRequest{
				Name:          "Keyboard",
				Price:         decimal.RequireFromString("10.00"),
				StockQuantity: -1,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product, err := svc.CreateProduct(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_CreateProduct_DefaultsActive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &ProductService{Store: &repo.ProductStore{DB: db}}

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:          "Keyboard",
		Price:         decimal.RequireFromString("19.99"),
		StockQuantity: 10,
	})
	require.NoError(t, err)
	assert.True(t, product.IsActive)

	var stored models.Product
	require.NoError(t, db.Where("product_id = ?", product.ProductID).First(&stored).Error)
	assert.True(t, stored.IsActive)
}
