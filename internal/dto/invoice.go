package dto

import (
	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/shopspring/decimal"
)

type InvoiceFormDTO struct {
	CustomerID string          `json:"customerId" validate:"required"                    message:"Please select a customer."`
	Amount     decimal.Decimal `json:"amount"     validate:"gt=0"                        message:"Please enter an amount greater than $0."`
	Status     string          `json:"status"     validate:"required,oneof=paid pending" message:"Please select an invoice status."`
}

// InvoiceRowDTO is an invoices table row with its date and amount ready for display.
type InvoiceRowDTO struct {
	domain.InvoicesTable
	FormattedDate   string `json:"formatted_date"   example:"Dec 6, 2022"`
	FormattedAmount string `json:"formatted_amount" example:"$157.95"`
}

type InvoicesPageDTO struct {
	Invoices    []InvoiceRowDTO `json:"invoices"`
	CurrentPage int             `json:"currentPage" example:"1"`
	TotalPages  int             `json:"totalPages"  example:"3"`
	Pagination  []string        `json:"pagination"`
}

type InvoicesPagesDTO struct {
	TotalPages int `json:"totalPages" example:"3"`
}

type DeleteInvoiceResponseDTO struct {
	Message string `json:"message"`
}
