package service

import (
	"context"
	"fmt"
	"regexp"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
	"boardcamp-backend/internal/utils"
)

var cpfPattern = regexp.MustCompile(`^\d{11}$`)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}
	if len(c.Phone) < 10 || len(c.Phone) > 11 {
		return fmt.Errorf("phone must have 10 or 11 digits: %w", domain.ErrInvalidInput)
	}
	if !cpfPattern.MatchString(c.CPF) {
		return fmt.Errorf("cpf must have exactly 11 digits: %w", domain.ErrInvalidInput)
	}
	if _, err := utils.ParseDate(c.Birthday); err != nil {
		return fmt.Errorf("birthday: %v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return fmt.Errorf("customer cpf %s: %w", c.CPF, err)
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return fmt.Errorf("customer %d: %w", c.ID, err)
	}
	return nil
}
