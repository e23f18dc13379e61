package service

import (
	"time"

	"github.com/GlebRadaev/invoicedash/internal/handlers/auth"
	"github.com/GlebRadaev/invoicedash/internal/handlers/customers"
	"github.com/GlebRadaev/invoicedash/internal/handlers/dashboard"
	"github.com/GlebRadaev/invoicedash/internal/handlers/invoices"
	"github.com/GlebRadaev/invoicedash/internal/handlers/seed"

	pkgauth "github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/validate"

	"github.com/GlebRadaev/invoicedash/internal/repo"
	"github.com/GlebRadaev/invoicedash/internal/service/authservice"
	"github.com/GlebRadaev/invoicedash/internal/service/customerservice"
	"github.com/GlebRadaev/invoicedash/internal/service/dashboardservice"
	"github.com/GlebRadaev/invoicedash/internal/service/invoiceservice"
	"github.com/GlebRadaev/invoicedash/internal/service/seedservice"
)

type Services struct {
	AuthService      auth.Service
	DashboardService dashboard.Service
	InvoiceService   invoices.Service
	CustomerService  customers.Service
	SeedService      seed.Service
}

func New(repo *repo.Repositories, tokens pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	validator := validate.New()
	hashService := &pkgauth.HashService{}

	return &Services{
		AuthService:      authservice.New(repo.UserRepo, hashService, tokens, validator, tokenTTL),
		DashboardService: dashboardservice.New(repo.RevenueRepo, repo.InvoiceRepo, repo.CustomerRepo),
		InvoiceService:   invoiceservice.New(repo.InvoiceRepo, validator),
		CustomerService:  customerservice.New(repo.CustomerRepo),
		SeedService:      seedservice.New(repo.SeedRepo, repo.InvoiceRepo, repo.TxManager, hashService),
	}
}
