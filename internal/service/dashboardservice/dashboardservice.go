package dashboardservice

//go:generate mockgen -source=dashboardservice.go -destination=mock_repo.go -package=dashboardservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/format"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const latestInvoicesLimit = 5

type RevenueRepo interface {
	FindAll(ctx context.Context) ([]domain.Revenue, error)
}

type InvoiceRepo interface {
	FindLatest(ctx context.Context, limit int) ([]domain.LatestInvoiceRaw, error)
	Count(ctx context.Context) (int64, error)
	SumByStatus(ctx context.Context) (paid, pending int64, err error)
}

type CustomerRepo interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	revenueRepo  RevenueRepo
	invoiceRepo  InvoiceRepo
	customerRepo CustomerRepo
}

func New(revenueRepo RevenueRepo, invoiceRepo InvoiceRepo, customerRepo CustomerRepo) *Service {
	return &Service{
		revenueRepo:  revenueRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

var (
	ErrFetchRevenue        = errors.New("failed to fetch revenue data")
	ErrFetchLatestInvoices = errors.New("failed to fetch the latest invoices")
	ErrFetchCardData       = errors.New("failed to fetch card data")
)

func (s *Service) FetchRevenue(ctx context.Context) ([]domain.Revenue, error) {
	revenue, err := s.revenueRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch revenue", zap.Error(err))
		return nil, ErrFetchRevenue
	}
	return revenue, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	raw, err := s.invoiceRepo.FindLatest(ctx, latestInvoicesLimit)
	if err != nil {
		zap.L().Error("failed to fetch latest invoices", zap.Error(err))
		return nil, ErrFetchLatestInvoices
	}

	latest := make([]domain.LatestInvoice, 0, len(raw))
	for _, invoice := range raw {
		latest = append(latest, domain.LatestInvoice{
			ID:       invoice.ID,
			Name:     invoice.Name,
			ImageURL: invoice.ImageURL,
			Email:    invoice.Email,
			Amount:   format.Currency(invoice.Amount),
		})
	}
	return latest, nil
}

// FetchCardData runs the three aggregate queries concurrently. They do not
// share a snapshot, so a write landing in between may skew the totals.
func (s *Service) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paid, pending int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		paid, pending, err = s.invoiceRepo.SumByStatus(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch card data", zap.Error(err))
		return nil, ErrFetchCardData
	}

	return &domain.CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    format.Currency(paid),
		TotalPendingInvoices: format.Currency(pending),
	}, nil
}
