package customerservice

//go:generate mockgen -source=customerservice.go -destination=mock_repo.go -package=customerservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/format"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.CustomerField, error)
	FindFiltered(ctx context.Context, pattern string) ([]domain.CustomersTableRaw, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrFetchCustomers     = errors.New("failed to fetch all customers")
	ErrFetchCustomerTable = errors.New("failed to fetch customer table")
)

func (s *Service) FetchCustomers(ctx context.Context) ([]domain.CustomerField, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch customers", zap.Error(err))
		return nil, ErrFetchCustomers
	}
	return customers, nil
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomersTable, error) {
	raw, err := s.repo.FindFiltered(ctx, "%"+query+"%")
	if err != nil {
		zap.L().Error("failed to fetch filtered customers", zap.String("query", query), zap.Error(err))
		return nil, ErrFetchCustomerTable
	}

	customers := make([]domain.CustomersTable, 0, len(raw))
	for _, c := range raw {
		customers = append(customers, domain.CustomersTable{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  format.Currency(c.TotalPending),
			TotalPaid:     format.Currency(c.TotalPaid),
		})
	}
	return customers, nil
}
