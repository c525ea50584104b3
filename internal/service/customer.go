package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/mkravets/commerce-api/internal/models"
	"github.com/mkravets/commerce-api/internal/repo"
	"github.com/mkravets/commerce-api/internal/transport"
)

type CustomerService struct {
	Store *repo.CustomerStore
}

func validateCustomerFields(firstName, lastName, email string, phone, address *string) error {
	if firstName == "" || len(firstName) > 100 {
		return fmt.Errorf("%w: first_name required, at most 100 chars", ErrValidation)
	}
	if lastName == "" || len(lastName) > 100 {
		return fmt.Errorf("%w: last_name required, at most 100 chars", ErrValidation)
	}
	if email == "" || len(email) > 255 {
		return fmt.Errorf("%w: email required, at most 255 chars", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	if phone != nil && len(*phone) > 20 {
		return fmt.Errorf("%w: phone at most 20 chars", ErrValidation)
	}
	if address != nil && len(*address) > 500 {
		return fmt.Errorf("%w: address at most 500 chars", ErrValidation)
	}
	return nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return customer, nil
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Store.GetAll(ctx)
}

func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.Store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fromStore(err)
	}
	return customer, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	if err := validateCustomerFields(req.FirstName, req.LastName, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	customer, err := s.Store.Add(ctx, customer)
	if err != nil {
		return nil, fromStore(err)
	}
	return customer, nil
}

// UpdateCustomer replaces every mutable field. The path id must match the
// body id; a mismatch is rejected before any store access.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, req transport.UpdateCustomerRequest) error {
	if id != req.CustomerID {
		return fmt.Errorf("%w: customer ID mismatch", ErrValidation)
	}
	if err := validateCustomerFields(req.FirstName, req.LastName, req.Email, req.Phone, req.Address); err != nil {
		return err
	}

	customer := &models.Customer{
		CustomerID: req.CustomerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
	}

	if err := s.Store.Update(ctx, customer); err != nil {
		return fromStore(err)
	}
	return nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
