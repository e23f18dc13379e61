package seedrepo

import (
	"context"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"go.uber.org/zap"
)

var createTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id VARCHAR(36) PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        email TEXT NOT NULL UNIQUE,
        password TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS customers (
        id VARCHAR(36) PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        email VARCHAR(255) NOT NULL,
        image_url VARCHAR(255) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS invoices (
        id VARCHAR(36) PRIMARY KEY,
        customer_id VARCHAR(36) NOT NULL,
        amount INT NOT NULL,
        status VARCHAR(255) NOT NULL,
        date DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS revenue (
        month VARCHAR(4) NOT NULL UNIQUE,
        revenue INT NOT NULL
    )`,
}

// Repository writes the bootstrap dataset. Every insert is a no-op for rows
// that already exist, so running it twice leaves the tables unchanged.
// Statements go to the transaction carried by ctx when there is one.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateTables(ctx context.Context) error {
	for _, stmt := range createTables {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			zap.L().Error("can't create table", zap.Error(err))
			return err
		}
	}
	return nil
}

// InsertUsers expects passwords that are already hashed.
func (r *Repository) InsertUsers(ctx context.Context, users []domain.User) (int64, error) {
	query := `
        INSERT INTO users (id, name, email, password)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT DO NOTHING
    `
	var inserted int64
	for _, user := range users {
		tag, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Password)
		if err != nil {
			zap.L().Error("can't seed user", zap.String("id", user.ID), zap.Error(err))
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r *Repository) InsertCustomers(ctx context.Context, customers []domain.Customer) (int64, error) {
	query := `
        INSERT INTO customers (id, name, email, image_url)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT DO NOTHING
    `
	var inserted int64
	for _, customer := range customers {
		tag, err := r.db.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
		if err != nil {
			zap.L().Error("can't seed customer", zap.String("id", customer.ID), zap.Error(err))
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r *Repository) InsertInvoices(ctx context.Context, invoices []domain.Invoice) (int64, error) {
	query := `
        INSERT INTO invoices (id, customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT DO NOTHING
    `
	var inserted int64
	for _, invoice := range invoices {
		tag, err := r.db.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
		if err != nil {
			zap.L().Error("can't seed invoice", zap.String("id", invoice.ID), zap.Error(err))
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r *Repository) InsertRevenue(ctx context.Context, revenue []domain.Revenue) (int64, error) {
	query := `
        INSERT INTO revenue (month, revenue)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `
	var inserted int64
	for _, month := range revenue {
		tag, err := r.db.Exec(ctx, query, month.Month, month.Revenue)
		if err != nil {
			zap.L().Error("can't seed revenue", zap.String("month", month.Month), zap.Error(err))
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}
