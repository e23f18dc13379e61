package invoiceservice

//go:generate mockgen -source=invoiceservice.go -destination=mock_repo.go -package=invoiceservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ItemsPerPage = 6

type Repo interface {
	FindFiltered(ctx context.Context, pattern string, limit, offset int) ([]domain.InvoicesTable, error)
	CountFiltered(ctx context.Context, pattern string) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Service struct {
	repo      Repo
	validator *validate.Validator
	newID     func() string
	now       func() time.Time
}

func New(repo Repo, validator *validate.Validator) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

var (
	ErrFetchInvoices      = errors.New("failed to fetch invoices")
	ErrFetchInvoicesPages = errors.New("failed to fetch total number of invoices")
	ErrFetchInvoice       = errors.New("failed to fetch invoice")
	ErrCreateInvoice      = errors.New("failed to create invoice")
	ErrUpdateInvoice      = errors.New("failed to update invoice")
	ErrDeleteInvoice      = errors.New("failed to delete invoice")
)

const (
	createFailedMessage = "Missing Fields. Failed to Create Invoice."
	updateFailedMessage = "Missing Fields. Failed to Update Invoice."
)

var hundred = decimal.NewFromInt(100)

func searchPattern(query string) string {
	return "%" + query + "%"
}

// FetchFilteredInvoices returns one page of matching invoices, newest first.
// Pages below 1 are treated as the first page; a page past the end is empty.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoicesTable, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage

	invoices, err := s.repo.FindFiltered(ctx, searchPattern(query), ItemsPerPage, offset)
	if err != nil {
		zap.L().Error("failed to fetch filtered invoices", zap.String("query", query), zap.Int("page", page), zap.Error(err))
		return nil, ErrFetchInvoices
	}
	return invoices, nil
}

func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, searchPattern(query))
	if err != nil {
		zap.L().Error("failed to count filtered invoices", zap.String("query", query), zap.Error(err))
		return 0, ErrFetchInvoicesPages
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage), nil
}

// FetchInvoiceByID returns nil without an error when the invoice does not exist.
func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch invoice", zap.String("id", id), zap.Error(err))
		return nil, ErrFetchInvoice
	}
	if invoice == nil {
		return nil, nil
	}
	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     decimal.New(invoice.Amount, -2),
		Status:     invoice.Status,
	}, nil
}

// CreateInvoice stores a new invoice dated today. A rejected form comes back as
// a non-nil FormState and nothing is written.
func (s *Service) CreateInvoice(ctx context.Context, form dto.InvoiceFormDTO) (*domain.FormState, error) {
	state, err := s.check(form, createFailedMessage)
	if err != nil || state != nil {
		return state, err
	}

	now := s.now().UTC()
	invoice := &domain.Invoice{
		ID:         s.newID(),
		CustomerID: form.CustomerID,
		Amount:     toCents(form.Amount),
		Status:     form.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		zap.L().Error("database error: failed to create invoice", zap.Error(err))
		return nil, ErrCreateInvoice
	}
	zap.L().Info("invoice created", zap.String("id", invoice.ID), zap.Int64("amount", invoice.Amount))
	return nil, nil
}

// UpdateInvoice replaces customer, amount and status. An unknown id is not an
// error; nothing is changed.
func (s *Service) UpdateInvoice(ctx context.Context, id string, form dto.InvoiceFormDTO) (*domain.FormState, error) {
	state, err := s.check(form, updateFailedMessage)
	if err != nil || state != nil {
		return state, err
	}

	invoice := &domain.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     toCents(form.Amount),
		Status:     form.Status,
	}
	affected, err := s.repo.Update(ctx, invoice)
	if err != nil {
		zap.L().Error("database error: failed to update invoice", zap.String("id", id), zap.Error(err))
		return nil, ErrUpdateInvoice
	}
	if affected == 0 {
		zap.L().Warn("update matched no invoice", zap.String("id", id))
	}
	return nil, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("database error: failed to delete invoice", zap.String("id", id), zap.Error(err))
		return ErrDeleteInvoice
	}
	zap.L().Info("invoice deleted", zap.String("id", id), zap.Int64("affected", affected))
	return nil
}

func (s *Service) check(form dto.InvoiceFormDTO, message string) (*domain.FormState, error) {
	fieldErrors, err := s.validator.Struct(form)
	if err != nil {
		zap.L().Error("can't validate invoice form", zap.Error(err))
		return nil, err
	}
	if fieldErrors == nil {
		return nil, nil
	}
	zap.L().Debug("invoice form rejected", zap.Any("errors", fieldErrors))
	return &domain.FormState{
		Errors:  fieldErrors,
		Message: message,
	}, nil
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
