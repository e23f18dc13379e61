package repo

import (
	"testing"

	"github.com/GlebRadaev/invoicedash/internal/pg"
	customerrepo "github.com/GlebRadaev/invoicedash/internal/repo/customer-repo"
	invoicerepo "github.com/GlebRadaev/invoicedash/internal/repo/invoice-repo"
	revenuerepo "github.com/GlebRadaev/invoicedash/internal/repo/revenue-repo"
	seedrepo "github.com/GlebRadaev/invoicedash/internal/repo/seed-repo"
	userrepo "github.com/GlebRadaev/invoicedash/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.InvoiceRepo)
	assert.NotNil(t, repo.CustomerRepo)
	assert.NotNil(t, repo.RevenueRepo)
	assert.NotNil(t, repo.SeedRepo)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &invoicerepo.Repository{}, repo.InvoiceRepo)
	assert.IsType(t, &customerrepo.Repository{}, repo.CustomerRepo)
	assert.IsType(t, &revenuerepo.Repository{}, repo.RevenueRepo)
	assert.IsType(t, &seedrepo.Repository{}, repo.SeedRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
