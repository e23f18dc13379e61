package revenuerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT month, revenue FROM revenue")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Revenue
	}{
		{
			name: "Storage order is kept",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"month", "revenue"}).
					AddRow("Jan", int64(2000)).
					AddRow("Feb", int64(1800)).
					AddRow("Mar", int64(2200))
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			result: []domain.Revenue{
				{Month: "Jan", Revenue: 2000},
				{Month: "Feb", Revenue: 1800},
				{Month: "Mar", Revenue: 2200},
			},
		},
		{
			name: "Empty table",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"month", "revenue"}))
			},
			result: []domain.Revenue{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Row iteration error",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"month", "revenue"}).
					AddRow("Jan", int64(2000)).
					RowError(0, errors.New("connection reset"))
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
