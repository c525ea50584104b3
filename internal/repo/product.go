package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/pkg/logging"
)

type ProductStore struct {
	DB *gorm.DB
}

func (s *ProductStore) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := s.DB.WithContext(ctx).Where("product_id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByCategory returns active products of the category.
func (s *ProductStore) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := s.DB.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetActive returns active products that are in stock.
func (s *ProductStore) GetActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.DB.WithContext(ctx).
		Where("is_active = ? AND stock_quantity > 0", true).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Add(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.CreatedDate = time.Now().UTC()
	if err := s.DB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("product_created", "product_id", product.ProductID)
	return product, nil
}

// Update replaces every field except the id and the creation timestamp.
// A missing id affects zero rows and is not an error.
func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	err := s.DB.WithContext(ctx).Model(&models.Product{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]any{
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"stock_quantity": product.StockQuantity,
			"category":       product.Category,
			"is_active":      product.IsActive,
		}).Error
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("product_updated", "product_id", product.ProductID)
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	if err := s.DB.WithContext(ctx).Where("product_id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return err
	}

	logging.FromContext(ctx).Info("product_deleted", "product_id", id)
	return nil
}
