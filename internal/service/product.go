package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/internal/repo"
	"github.com/mkravets/commerce-api/internal/transport"
)

type ProductService struct {
	Store *repo.ProductStore
}

func validateProductFields(name string, description *string, price decimal.Decimal, stockQuantity int, category *string) error {
	if name == "" || len(name) > 200 {
		return fmt.Errorf("%w: name required, at most 200 chars", ErrValidation)
	}
	if description != nil && len(*description) > 1000 {
		return fmt.Errorf("%w: description at most 1000 chars", ErrValidation)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if stockQuantity < 0 {
		return fmt.Errorf("%w: stock_quantity must be >= 0", ErrValidation)
	}
	if category != nil && len(*category) > 100 {
		return fmt.Errorf("%w: category at most 100 chars", ErrValidation)
	}
	return nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return product, nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Store.GetAll(ctx)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.Store.GetByCategory(ctx, category)
}

func (s *ProductService) GetActiveProducts(ctx context.Context) ([]models.Product, error) {
	return s.Store.GetActive(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := validateProductFields(req.Name, req.Description, req.Price, req.StockQuantity, req.Category); err != nil {
		return nil, err
	}

	// Products are visible unless explicitly created inactive.
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		IsActive:      active,
	}

	product, err := s.Store.Add(ctx, product)
	if err != nil {
		return nil, fromStore(err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) error {
	if id != req.ProductID {
		return fmt.Errorf("%w: product ID mismatch", ErrValidation)
	}
	if err := validateProductFields(req.Name, req.Description, req.Price, req.StockQuantity, req.Category); err != nil {
		return err
	}

	product := &models.Product{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		IsActive:      req.IsActive,
	}

	if err := s.Store.Update(ctx, product); err != nil {
		return fromStore(err)
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
