package customers

//go:generate mockgen -source=customers.go -destination=mock_service.go -package=customers

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
)

type Service interface {
	FetchCustomers(ctx context.Context) ([]domain.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomersTable, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List godoc
//
//	@Summary		Customer options
//	@Description	All customers as id and name, sorted by name, for the invoice form select
//	@Tags			Customers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.CustomerField
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.FetchCustomers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}

// Filtered godoc
//
//	@Summary		Customers table
//	@Description	Customers matching the query by name or email, with invoice totals
//	@Tags			Customers
//	@Produce		json
//	@Param			query	query	string	false	"Search term"
//	@Security		BearerAuth
//	@Success		200	{array}		domain.CustomersTable
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/customers/filtered [get]
func (h *CustomerHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.FetchFilteredCustomers(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}
