package dashboard

//go:generate mockgen -source=dashboard.go -destination=mock_service.go -package=dashboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/pkg/format"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
)

type Service interface {
	FetchRevenue(ctx context.Context) ([]domain.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Revenue godoc
//
//	@Summary		Revenue chart
//	@Description	Monthly revenue in storage order with the y-axis labels for the chart
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RevenueChartDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.dashboardService.FetchRevenue(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	values := make([]int64, 0, len(revenue))
	for _, month := range revenue {
		values = append(values, month.Revenue)
	}
	labels, top := format.YAxis(values)
	utils.RespondWithJSON(w, http.StatusOK, dto.RevenueChartDTO{
		Revenue:     revenue,
		YAxisLabels: labels,
		TopLabel:    top,
	})
}

// LatestInvoices godoc
//
//	@Summary		Latest invoices
//	@Description	The five most recent invoices with customer details and formatted amounts
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.LatestInvoice
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/latest-invoices [get]
func (h *DashboardHandler) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.dashboardService.FetchLatestInvoices(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}

// Cards godoc
//
//	@Summary		Dashboard cards
//	@Description	Invoice and customer counts with paid and pending totals
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.CardData
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/cards [get]
func (h *DashboardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.dashboardService.FetchCardData(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cards)
}
