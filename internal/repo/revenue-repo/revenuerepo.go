package revenuerepo

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

// FindAll returns revenue rows in storage order.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Revenue, error) {
	rows, err := r.db.Query(ctx, "SELECT month, revenue FROM revenue")
	if err != nil {
		zap.L().Error("can't get revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	revenue := []domain.Revenue{}
	for rows.Next() {
		var month domain.Revenue
		if err := rows.Scan(&month.Month, &month.Revenue); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		revenue = append(revenue, month)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate revenue", zap.Error(err))
		return nil, err
	}
	return revenue, nil
}
