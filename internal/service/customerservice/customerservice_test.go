package customerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestFetchCustomers(t *testing.T) {
	service, repo := NewMock(t)
	customers := []domain.CustomerField{{ID: "cust-5", Name: "Amy Burns"}, {ID: "cust-6", Name: "Balazs Orban"}}

	repo.EXPECT().FindAll(gomock.Any()).Return(customers, nil)
	result, err := service.FetchCustomers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, customers, result)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))
	result, err = service.FetchCustomers(context.Background())
	assert.ErrorIs(t, err, ErrFetchCustomers)
	assert.Nil(t, result)
}

func TestFetchFilteredCustomers(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		prepareMock   func(repo *MockRepo)
		expected      []domain.CustomersTable
		expectedError error
	}{
		{
			name:  "Totals are formatted",
			query: "delba",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindFiltered(gomock.Any(), "%delba%").Return([]domain.CustomersTableRaw{
					{
						ID: "cust-2", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png",
						TotalInvoices: 2, TotalPending: 20348, TotalPaid: 500,
					},
				}, nil)
			},
			expected: []domain.CustomersTable{
				{
					ID: "cust-2", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png",
					TotalInvoices: 2, TotalPending: "$203.48", TotalPaid: "$5.00",
				},
			},
		},
		{
			name:  "Customer without invoices",
			query: "",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindFiltered(gomock.Any(), "%%").Return([]domain.CustomersTableRaw{
					{ID: "cust-7", Name: "New Customer", Email: "new@customer.com", ImageURL: "/customers/new.png"},
				}, nil)
			},
			expected: []domain.CustomersTable{
				{
					ID: "cust-7", Name: "New Customer", Email: "new@customer.com", ImageURL: "/customers/new.png",
					TotalPending: "$0.00", TotalPaid: "$0.00",
				},
			},
		},
		{
			name:  "Repository failure",
			query: "x",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindFiltered(gomock.Any(), "%x%").Return(nil, errors.New("boom"))
			},
			expectedError: ErrFetchCustomerTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)
			result, err := service.FetchFilteredCustomers(context.Background(), tt.query)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
