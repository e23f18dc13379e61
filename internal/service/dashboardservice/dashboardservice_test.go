package dashboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	revenue  *MockRevenueRepo
	invoice  *MockInvoiceRepo
	customer *MockCustomerRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		revenue:  NewMockRevenueRepo(ctrl),
		invoice:  NewMockInvoiceRepo(ctrl),
		customer: NewMockCustomerRepo(ctrl),
	}
	return New(m.revenue, m.invoice, m.customer), m
}

func TestFetchRevenue(t *testing.T) {
	service, m := NewMock(t)
	revenue := []domain.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}

	m.revenue.EXPECT().FindAll(gomock.Any()).Return(revenue, nil)
	result, err := service.FetchRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, revenue, result)

	m.revenue.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))
	result, err = service.FetchRevenue(context.Background())
	assert.ErrorIs(t, err, ErrFetchRevenue)
	assert.Nil(t, result)
}

func TestFetchLatestInvoices(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expected      []domain.LatestInvoice
		expectedError error
	}{
		{
			name: "Amounts are formatted",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().FindLatest(gomock.Any(), 5).Return([]domain.LatestInvoiceRaw{
					{ID: "inv-1", Name: "Lee Robinson", ImageURL: "/customers/lee-robinson.png", Email: "lee@robinson.com", Amount: 54246},
					{ID: "inv-2", Name: "Evil Rabbit", ImageURL: "/customers/evil-rabbit.png", Email: "evil@rabbit.com", Amount: 666},
				}, nil)
			},
			expected: []domain.LatestInvoice{
				{ID: "inv-1", Name: "Lee Robinson", ImageURL: "/customers/lee-robinson.png", Email: "lee@robinson.com", Amount: "$542.46"},
				{ID: "inv-2", Name: "Evil Rabbit", ImageURL: "/customers/evil-rabbit.png", Email: "evil@rabbit.com", Amount: "$6.66"},
			},
		},
		{
			name: "No invoices",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().FindLatest(gomock.Any(), 5).Return([]domain.LatestInvoiceRaw{}, nil)
			},
			expected: []domain.LatestInvoice{},
		},
		{
			name: "Repository failure is opaque",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().FindLatest(gomock.Any(), 5).Return(nil, errors.New("relation does not exist"))
			},
			expectedError: ErrFetchLatestInvoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			result, err := service.FetchLatestInvoices(context.Background())
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

func TestFetchCardData(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expected      *domain.CardData
		expectedError error
	}{
		{
			name: "All aggregates succeed",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().Count(gomock.Any()).Return(int64(13), nil)
				m.customer.EXPECT().Count(gomock.Any()).Return(int64(6), nil)
				m.invoice.EXPECT().SumByStatus(gomock.Any()).Return(int64(123456), int64(78900), nil)
			},
			expected: &domain.CardData{
				NumberOfCustomers:    6,
				NumberOfInvoices:     13,
				TotalPaidInvoices:    "$1,234.56",
				TotalPendingInvoices: "$789.00",
			},
		},
		{
			name: "Empty database",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
				m.customer.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
				m.invoice.EXPECT().SumByStatus(gomock.Any()).Return(int64(0), int64(0), nil)
			},
			expected: &domain.CardData{
				TotalPaidInvoices:    "$0.00",
				TotalPendingInvoices: "$0.00",
			},
		},
		{
			name: "One aggregate fails",
			prepareMock: func(m mocks) {
				m.invoice.EXPECT().Count(gomock.Any()).Return(int64(13), nil).AnyTimes()
				m.customer.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("timeout"))
				m.invoice.EXPECT().SumByStatus(gomock.Any()).Return(int64(0), int64(0), nil).AnyTimes()
			},
			expectedError: ErrFetchCardData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			result, err := service.FetchCardData(context.Background())
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
