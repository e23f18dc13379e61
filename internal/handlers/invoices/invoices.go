package invoices

//go:generate mockgen -source=invoices.go -destination=mock_service.go -package=invoices

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/pkg/format"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// RevalidatedPath is the cache prefix dropped after every invoice write.
	RevalidatedPath = "/api/dashboard"
	// RedirectLocation is where a successful create or update navigates.
	RedirectLocation = "/dashboard/invoices"
)

type Service interface {
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoicesTable, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error)
	CreateInvoice(ctx context.Context, form dto.InvoiceFormDTO) (*domain.FormState, error)
	UpdateInvoice(ctx context.Context, id string, form dto.InvoiceFormDTO) (*domain.FormState, error)
	DeleteInvoice(ctx context.Context, id string) error
}

type Revalidator interface {
	RevalidatePath(prefix string)
}

type InvoiceHandler struct {
	invoiceService Service
	revalidator    Revalidator
}

func New(invoiceService Service, revalidator Revalidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		revalidator:    revalidator,
	}
}

// List godoc
//
//	@Summary		Search invoices
//	@Description	One page of invoices matching the query, newest first, with pagination tokens
//	@Tags			Invoices
//	@Produce		json
//	@Param			query	query	string	false	"Search term"
//	@Param			page	query	int		false	"Page number, starting at 1"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.InvoicesPageDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/invoices [get]
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	invoices, err := h.invoiceService.FetchFilteredInvoices(r.Context(), query, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	totalPages, err := h.invoiceService.FetchInvoicesPages(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rows := make([]dto.InvoiceRowDTO, 0, len(invoices))
	for _, invoice := range invoices {
		rows = append(rows, dto.InvoiceRowDTO{
			InvoicesTable:   invoice,
			FormattedDate:   format.DateToLocal(invoice.Date),
			FormattedAmount: format.Currency(invoice.Amount),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoicesPageDTO{
		Invoices:    rows,
		CurrentPage: page,
		TotalPages:  totalPages,
		Pagination:  format.Pagination(page, totalPages),
	})
}

// Pages godoc
//
//	@Summary		Count invoice pages
//	@Description	Number of pages of six invoices matching the query
//	@Tags			Invoices
//	@Produce		json
//	@Param			query	query	string	false	"Search term"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.InvoicesPagesDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/invoices/pages [get]
func (h *InvoiceHandler) Pages(w http.ResponseWriter, r *http.Request) {
	totalPages, err := h.invoiceService.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoicesPagesDTO{TotalPages: totalPages})
}

// Get godoc
//
//	@Summary		Get invoice
//	@Description	Invoice prepared for the edit form, amount in dollars
//	@Tags			Invoices
//	@Produce		json
//	@Param			id	path	string	true	"Invoice ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.InvoiceForm
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/invoices/{id} [get]
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.invoiceService.FetchInvoiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if invoice == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoice)
}

// Create godoc
//
//	@Summary		Create invoice
//	@Description	Validate the form and store a new invoice dated today. Redirects to the invoice list.
//	@Tags			Invoices
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body	dto.InvoiceFormDTO	true	"Invoice form"
//	@Security		BearerAuth
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid request body"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		422	{object}	domain.FormState	"Validation errors"
//	@Failure		500	{object}	utils.Response		"Database Error: Failed to Create Invoice."
//	@Router			/api/dashboard/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	state, err := h.invoiceService.CreateInvoice(r.Context(), form)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database Error: Failed to Create Invoice.")
		return
	}
	if state != nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, state)
		return
	}
	h.redirect(w, r)
}

// Update godoc
//
//	@Summary		Update invoice
//	@Description	Replace customer, amount and status of an invoice. Redirects to the invoice list.
//	@Tags			Invoices
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			id		path	string				true	"Invoice ID"
//	@Param			request	body	dto.InvoiceFormDTO	true	"Invoice form"
//	@Security		BearerAuth
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid request body"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		422	{object}	domain.FormState	"Validation errors"
//	@Failure		500	{object}	utils.Response		"Database Error: Failed to Update Invoice."
//	@Router			/api/dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	state, err := h.invoiceService.UpdateInvoice(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database Error: Failed to Update Invoice.")
		return
	}
	if state != nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, state)
		return
	}
	h.redirect(w, r)
}

// Delete godoc
//
//	@Summary		Delete invoice
//	@Tags			Invoices
//	@Produce		json
//	@Param			id	path	string	true	"Invoice ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DeleteInvoiceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Database Error: Failed to Delete Invoice."
//	@Router			/api/dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database Error: Failed to Delete Invoice.")
		return
	}
	h.revalidator.RevalidatePath(RevalidatedPath)
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteInvoiceResponseDTO{Message: "Deleted Invoice."})
}

func (h *InvoiceHandler) redirect(w http.ResponseWriter, r *http.Request) {
	h.revalidator.RevalidatePath(RevalidatedPath)
	http.Redirect(w, r, RedirectLocation, http.StatusSeeOther)
}

// decodeForm reads the invoice form from JSON or from an HTML form. An amount
// that does not parse is left at zero and rejected by validation.
func decodeForm(r *http.Request) (dto.InvoiceFormDTO, error) {
	var form dto.InvoiceFormDTO
	if !utils.IsForm(r) {
		var body struct {
			CustomerID string          `json:"customerId"`
			Amount     json.RawMessage `json:"amount"`
			Status     string          `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return form, err
		}
		form.CustomerID = body.CustomerID
		form.Status = body.Status
		if len(body.Amount) > 0 {
			if err := form.Amount.UnmarshalJSON(body.Amount); err != nil {
				form.Amount = decimal.Zero
				zap.L().Debug("unparsable invoice amount", zap.ByteString("amount", body.Amount))
			}
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return form, err
	}
	form.CustomerID = r.PostForm.Get("customerId")
	form.Status = r.PostForm.Get("status")
	if amount, err := decimal.NewFromString(r.PostForm.Get("amount")); err == nil {
		form.Amount = amount
	} else {
		zap.L().Debug("unparsable invoice amount", zap.String("amount", r.PostForm.Get("amount")))
	}
	return form, nil
}
