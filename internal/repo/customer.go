package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/pkg/logging"
)

type CustomerStore struct {
	DB *gorm.DB
}

func (s *CustomerStore) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer := models.Customer{}
	if err := s.DB.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerStore) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.WithContext(ctx).Order("last_name, first_name").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerStore) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer := models.Customer{}
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Add assigns the creation timestamp and the generated id.
func (s *CustomerStore) Add(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.CreatedDate = time.Now().UTC()
	if err := s.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("customer_created", "customer_id", customer.CustomerID)
	return customer, nil
}

// Update replaces every field except the id and the creation timestamp.
// A missing id affects zero rows and is not an error.
func (s *CustomerStore) Update(ctx context.Context, customer *models.Customer) error {
	err := s.DB.WithContext(ctx).Model(&models.Customer{}).
		Where("customer_id = ?", customer.CustomerID).
		Updates(map[string]any{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"address":    customer.Address,
		}).Error
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("customer_updated", "customer_id", customer.CustomerID)
	return nil
}

func (s *CustomerStore) Delete(ctx context.Context, id uint) error {
	if err := s.DB.WithContext(ctx).Where("customer_id = ?", id).Delete(&models.Customer{}).Error; err != nil {
		return err
	}

	logging.FromContext(ctx).Info("customer_deleted", "customer_id", id)
	return nil
}
