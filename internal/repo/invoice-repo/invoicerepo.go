package invoicerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const filterPredicate = `
        customers.name ILIKE $1 OR
        customers.email ILIKE $1 OR
        invoices.amount::text ILIKE $1 OR
        invoices.date::text ILIKE $1 OR
        invoices.status ILIKE $1
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindLatest(ctx context.Context, limit int) ([]domain.LatestInvoiceRaw, error) {
	query := `
        SELECT invoices.amount, customers.name, customers.image_url, customers.email, invoices.id
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        ORDER BY invoices.date DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get latest invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.LatestInvoiceRaw, 0, limit)
	for rows.Next() {
		var invoice domain.LatestInvoiceRaw
		err := rows.Scan(&invoice.Amount, &invoice.Name, &invoice.ImageURL, &invoice.Email, &invoice.ID)
		if err != nil {
			zap.L().Error("can't scan latest invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate latest invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// FindFiltered returns one page of invoices whose customer or invoice fields
// contain pattern, newest first. pattern is passed to ILIKE as is.
func (r *Repository) FindFiltered(ctx context.Context, pattern string, limit, offset int) ([]domain.InvoicesTable, error) {
	query := `
        SELECT
            invoices.id,
            invoices.customer_id,
            invoices.amount,
            invoices.date,
            invoices.status,
            customers.name,
            customers.email,
            customers.image_url
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE` + filterPredicate + `
        ORDER BY invoices.date DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		zap.L().Error("can't get filtered invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.InvoicesTable, 0, limit)
	for rows.Next() {
		var invoice domain.InvoicesTable
		err := rows.Scan(
			&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Date,
			&invoice.Status, &invoice.Name, &invoice.Email, &invoice.ImageURL,
		)
		if err != nil {
			zap.L().Error("can't scan filtered invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate filtered invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (r *Repository) CountFiltered(ctx context.Context, pattern string) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE` + filterPredicate

	var count int64
	if err := r.db.QueryRow(ctx, query, pattern).Scan(&count); err != nil {
		zap.L().Error("can't count filtered invoices", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
        SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date
        FROM invoices
        WHERE invoices.id = $1
    `
	var invoice domain.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        INSERT INTO invoices (id, customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return err
	}
	return nil
}

// Update replaces customer, amount and status of the invoice and reports the
// number of rows changed. The stored date is kept.
func (r *Repository) Update(ctx context.Context, invoice *domain.Invoice) (int64, error) {
	query := `
        UPDATE invoices
        SET customer_id = $1, amount = $2, status = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID)
	if err != nil {
		zap.L().Error("failed to update invoice", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		zap.L().Error("failed to delete invoice", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM invoices").Scan(&count); err != nil {
		zap.L().Error("can't count invoices", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumByStatus returns paid and pending totals in cents; both are zero on an empty table.
func (r *Repository) SumByStatus(ctx context.Context) (paid, pending int64, err error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
            COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
        FROM invoices
    `
	if err = r.db.QueryRow(ctx, query).Scan(&paid, &pending); err != nil {
		zap.L().Error("can't sum invoices by status", zap.Error(err))
		return 0, 0, err
	}
	return paid, pending, nil
}

func (r *Repository) FindByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmount, error) {
	query := `
        SELECT invoices.amount, customers.name
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE invoices.amount = $1
    `
	rows, err := r.db.Query(ctx, query, amount)
	if err != nil {
		zap.L().Error("can't get invoices by amount", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.InvoiceAmount, 0)
	for rows.Next() {
		var invoice domain.InvoiceAmount
		if err := rows.Scan(&invoice.Amount, &invoice.Name); err != nil {
			zap.L().Error("can't scan invoice amount row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate invoices by amount", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}
