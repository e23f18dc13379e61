package seedservice

//go:generate mockgen -source=seedservice.go -destination=mock_repo.go -package=seedservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DiagnosticAmount is the invoice amount, in cents, looked up by Diagnose.
const DiagnosticAmount int64 = 666

type Repo interface {
	CreateTables(ctx context.Context) error
	InsertUsers(ctx context.Context, users []domain.User) (int64, error)
	InsertCustomers(ctx context.Context, customers []domain.Customer) (int64, error)
	InsertInvoices(ctx context.Context, invoices []domain.Invoice) (int64, error)
	InsertRevenue(ctx context.Context, revenue []domain.Revenue) (int64, error)
}

type InvoiceRepo interface {
	FindByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmount, error)
}

type Service struct {
	repo        Repo
	invoiceRepo InvoiceRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
}

func New(repo Repo, invoiceRepo InvoiceRepo, txManager pg.TXManager, hashService auth.HashServiceInterface) *Service {
	return &Service{
		repo:        repo,
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
		hashService: hashService,
	}
}

var (
	ErrSeed  = errors.New("failed to seed database")
	ErrQuery = errors.New("failed to query invoices")
)

// Seed creates the schema and loads the bootstrap dataset in one transaction.
// Rows that already exist are left as they are.
func (s *Service) Seed(ctx context.Context) error {
	users, err := s.hashUsers(ctx)
	if err != nil {
		zap.L().Error("can't hash seed passwords", zap.Error(err))
		return ErrSeed
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateTables(ctx); err != nil {
			return err
		}
		n, err := s.repo.InsertUsers(ctx, users)
		if err != nil {
			return err
		}
		zap.L().Info("seeded users", zap.Int64("inserted", n))

		n, err = s.repo.InsertCustomers(ctx, seedCustomers)
		if err != nil {
			return err
		}
		zap.L().Info("seeded customers", zap.Int64("inserted", n))

		n, err = s.repo.InsertInvoices(ctx, seedInvoices)
		if err != nil {
			return err
		}
		zap.L().Info("seeded invoices", zap.Int64("inserted", n))

		n, err = s.repo.InsertRevenue(ctx, seedRevenue)
		if err != nil {
			return err
		}
		zap.L().Info("seeded revenue", zap.Int64("inserted", n))
		return nil
	})
	if err != nil {
		zap.L().Error("seed rolled back", zap.Error(err))
		return ErrSeed
	}
	return nil
}

// hashUsers returns copies of the seed users with bcrypt hashed passwords.
func (s *Service) hashUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, len(seedUsers))
	g, gCtx := errgroup.WithContext(ctx)
	for i, user := range seedUsers {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			hash, err := s.hashService.HashPassword(user.Password)
			if err != nil {
				return err
			}
			user.Password = hash
			users[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// Diagnose lists invoices with DiagnosticAmount together with their customer names.
func (s *Service) Diagnose(ctx context.Context) ([]domain.InvoiceAmount, error) {
	invoices, err := s.invoiceRepo.FindByAmount(ctx, DiagnosticAmount)
	if err != nil {
		zap.L().Error("failed to query invoices by amount", zap.Error(err))
		return nil, ErrQuery
	}
	return invoices, nil
}
