package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/handlers/auth"
	"github.com/GlebRadaev/invoicedash/internal/handlers/customers"
	"github.com/GlebRadaev/invoicedash/internal/handlers/dashboard"
	"github.com/GlebRadaev/invoicedash/internal/handlers/invoices"
	"github.com/GlebRadaev/invoicedash/internal/handlers/seed"
	"github.com/GlebRadaev/invoicedash/internal/service"
	pkgauth "github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/cache"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		DashboardService: dashboard.NewMockService(ctrl),
		InvoiceService:   invoices.NewMockService(ctrl),
		CustomerService:  customers.NewMockService(ctrl),
		SeedService:      seed.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewJWTService("test-secret"), cache.New())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.InvoiceHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDashboardHandler := NewMockDashboardHandler(ctrl)
	mockInvoiceHandler := NewMockInvoiceHandler(ctrl)
	mockCustomerHandler := NewMockCustomerHandler(ctrl)
	mockSeedHandler := NewMockSeedHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDashboardHandler.EXPECT().Revenue(gomock.Any(), gomock.Any()).AnyTimes()
	mockDashboardHandler.EXPECT().LatestInvoices(gomock.Any(), gomock.Any()).AnyTimes()
	mockDashboardHandler.EXPECT().Cards(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Pages(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCustomerHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCustomerHandler.EXPECT().Filtered(gomock.Any(), gomock.Any()).AnyTimes()
	mockSeedHandler.EXPECT().Seed(gomock.Any(), gomock.Any()).AnyTimes()
	mockSeedHandler.EXPECT().Query(gomock.Any(), gomock.Any()).AnyTimes()

	tokens := pkgauth.NewJWTService("test-secret")
	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		DashboardHandler: mockDashboardHandler,
		InvoiceHandler:   mockInvoiceHandler,
		CustomerHandler:  mockCustomerHandler,
		SeedHandler:      mockSeedHandler,
		tokens:           tokens,
		cache:            cache.New(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := tokens.GenerateJWT("410544b2-4001-4271-9855-fec4b6a6442a", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		authed bool
		status int
	}{
		{"GET", "/seed", false, http.StatusOK},
		{"GET", "/query", false, http.StatusOK},
		{"POST", "/api/login", false, http.StatusOK},
		{"GET", "/api/dashboard/revenue", false, http.StatusUnauthorized},
		{"GET", "/api/dashboard/invoices", false, http.StatusUnauthorized},
		{"DELETE", "/api/dashboard/invoices/inv-1", false, http.StatusUnauthorized},
		{"GET", "/api/dashboard/revenue", true, http.StatusOK},
		{"GET", "/api/dashboard/latest-invoices", true, http.StatusOK},
		{"GET", "/api/dashboard/cards", true, http.StatusOK},
		{"GET", "/api/dashboard/invoices?query=lee&page=2", true, http.StatusOK},
		{"GET", "/api/dashboard/invoices/pages", true, http.StatusOK},
		{"GET", "/api/dashboard/invoices/inv-1", true, http.StatusOK},
		{"POST", "/api/dashboard/invoices", true, http.StatusOK},
		{"PUT", "/api/dashboard/invoices/inv-1", true, http.StatusOK},
		{"POST", "/api/dashboard/invoices/inv-1", true, http.StatusOK},
		{"DELETE", "/api/dashboard/invoices/inv-1", true, http.StatusOK},
		{"GET", "/api/dashboard/customers", true, http.StatusOK},
		{"GET", "/api/dashboard/customers/filtered?query=amy", true, http.StatusOK},
		{"PATCH", "/api/dashboard/invoices/inv-1", true, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.authed {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSeedRevalidatesDashboardCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboardService := dashboard.NewMockService(ctrl)
	seedService := seed.NewMockService(ctrl)

	tokens := pkgauth.NewJWTService("test-secret")
	store := cache.New()
	h := New(&service.Services{
		AuthService:      auth.NewMockService(ctrl),
		DashboardService: dashboardService,
		InvoiceService:   invoices.NewMockService(ctrl),
		CustomerService:  customers.NewMockService(ctrl),
		SeedService:      seedService,
	}, tokens, store)

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := tokens.GenerateJWT("410544b2-4001-4271-9855-fec4b6a6442a", time.Now().Add(time.Hour))
	require.NoError(t, err)
	getCards := func() string {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/cards", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	gomock.InOrder(
		dashboardService.EXPECT().FetchCardData(gomock.Any()).Return(&domain.CardData{
			TotalPaidInvoices: "$0.00", TotalPendingInvoices: "$0.00",
		}, nil),
		seedService.EXPECT().Seed(gomock.Any()).Return(nil),
		dashboardService.EXPECT().FetchCardData(gomock.Any()).Return(&domain.CardData{
			NumberOfCustomers: 6, NumberOfInvoices: 13, TotalPaidInvoices: "$1,118.26", TotalPendingInvoices: "$1,296.32",
		}, nil),
	)

	assert.Contains(t, getCards(), `"numberOfInvoices":0`)
	assert.Contains(t, getCards(), `"numberOfInvoices":0`, "served from cache")
	assert.Equal(t, 1, store.Len())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, store.Len())

	assert.Contains(t, getCards(), `"numberOfInvoices":13`)
}
