package repo

import (
	"github.com/GlebRadaev/invoicedash/internal/pg"
	customerrepo "github.com/GlebRadaev/invoicedash/internal/repo/customer-repo"
	invoicerepo "github.com/GlebRadaev/invoicedash/internal/repo/invoice-repo"
	revenuerepo "github.com/GlebRadaev/invoicedash/internal/repo/revenue-repo"
	seedrepo "github.com/GlebRadaev/invoicedash/internal/repo/seed-repo"
	userrepo "github.com/GlebRadaev/invoicedash/internal/repo/user-repo"
	"github.com/GlebRadaev/invoicedash/internal/service/authservice"
	"github.com/GlebRadaev/invoicedash/internal/service/dashboardservice"
	"github.com/GlebRadaev/invoicedash/internal/service/seedservice"
)

// Repositories groups the data access layer. The invoice and customer
// repositories serve several services and are kept concrete.
type Repositories struct {
	UserRepo     authservice.Repo
	InvoiceRepo  *invoicerepo.Repository
	CustomerRepo *customerrepo.Repository
	RevenueRepo  dashboardservice.RevenueRepo
	SeedRepo     seedservice.Repo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		InvoiceRepo:  invoicerepo.New(conn),
		CustomerRepo: customerrepo.New(conn),
		RevenueRepo:  revenuerepo.New(conn),
		SeedRepo:     seedrepo.New(conn),
		TxManager:    txManager,
	}
}
