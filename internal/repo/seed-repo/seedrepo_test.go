package seedrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateTables(t *testing.T) {
	tables := []string{"users", "customers", "invoices", "revenue"}

	t.Run("All tables created", func(t *testing.T) {
		repo, mock := NewMock(t)
		for _, table := range tables {
			mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table + " (")).
				WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		}
		assert.NoError(t, repo.CreateTables(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stops at first failure", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users (")).
			WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS customers (")).
			WillReturnError(errors.New("permission denied"))
		assert.Error(t, repo.CreateTables(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_InsertUsers(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING")
	users := []domain.User{{ID: "user-1", Name: "User", Email: "user@nextmail.com", Password: "hash"}}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		inserted  int64
	}{
		{
			name: "New user",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).WithArgs("user-1", "User", "user@nextmail.com", "hash").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			inserted: 1,
		},
		{
			name: "Existing id or email is skipped",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).WithArgs("user-1", "User", "user@nextmail.com", "hash").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			inserted: 0,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).WithArgs("user-1", "User", "user@nextmail.com", "hash").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			inserted, err := repo.InsertUsers(context.Background(), users)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.inserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InsertCustomers(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING")
	customers := []domain.Customer{
		{ID: "cust-1", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: "cust-2", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	}

	mock.ExpectExec(query).WithArgs("cust-1", "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(query).WithArgs("cust-2", "Amy Burns", "amy@burns.com", "/customers/amy-burns.png").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.InsertCustomers(context.Background(), customers)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	mock.ExpectExec(query).WithArgs("cust-1", "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png").
		WillReturnError(errors.New("database error"))
	_, err = repo.InsertCustomers(context.Background(), customers)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertInvoices(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING")
	date := time.Date(2023, time.June, 27, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{{ID: "inv-1", CustomerID: "cust-1", Amount: 666, Status: "pending", Date: date}}

	mock.ExpectExec(query).WithArgs("inv-1", "cust-1", int64(666), "pending", date).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	inserted, err := repo.InsertInvoices(context.Background(), invoices)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	mock.ExpectExec(query).WithArgs("inv-1", "cust-1", int64(666), "pending", date).
		WillReturnError(errors.New("database error"))
	_, err = repo.InsertInvoices(context.Background(), invoices)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertRevenue(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO revenue (month, revenue) VALUES ($1, $2) ON CONFLICT DO NOTHING")
	revenue := []domain.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}

	mock.ExpectExec(query).WithArgs("Jan", int64(2000)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(query).WithArgs("Feb", int64(1800)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	inserted, err := repo.InsertRevenue(context.Background(), revenue)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	mock.ExpectExec(query).WithArgs("Jan", int64(2000)).WillReturnError(errors.New("database error"))
	_, err = repo.InsertRevenue(context.Background(), revenue)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
