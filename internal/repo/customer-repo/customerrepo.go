package customerrepo

import (
	"context"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.CustomerField, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM customers ORDER BY name ASC")
	if err != nil {
		zap.L().Error("can't get customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []domain.CustomerField{}
	for rows.Next() {
		var customer domain.CustomerField
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate customers", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

// FindFiltered returns customers whose name or email matches pattern together
// with their invoice totals in cents. Customers without invoices get zeros.
func (r *Repository) FindFiltered(ctx context.Context, pattern string) ([]domain.CustomersTableRaw, error) {
	query := `
        SELECT
            customers.id,
            customers.name,
            customers.email,
            customers.image_url,
            COUNT(invoices.id) AS total_invoices,
            COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
            COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
        FROM customers
        LEFT JOIN invoices ON customers.id = invoices.customer_id
        WHERE
            customers.name ILIKE $1 OR
            customers.email ILIKE $1
        GROUP BY customers.id, customers.name, customers.email, customers.image_url
        ORDER BY customers.name ASC
    `
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		zap.L().Error("can't get filtered customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []domain.CustomersTableRaw{}
	for rows.Next() {
		var c domain.CustomersTableRaw
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid)
		if err != nil {
			zap.L().Error("can't scan customers table row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate filtered customers", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	if err != nil {
		zap.L().Error("can't count customers", zap.Error(err))
		return 0, err
	}
	return count, nil
}
