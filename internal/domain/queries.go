package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LatestInvoiceRaw struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	ImageURL string `db:"image_url"`
	Email    string `db:"email"`
	Amount   int64  `db:"amount"`
}

type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

type InvoicesTable struct {
	ID         string    `db:"id"          json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Name       string    `db:"name"        json:"name"`
	Email      string    `db:"email"       json:"email"`
	ImageURL   string    `db:"image_url"   json:"image_url"`
	Date       time.Time `db:"date"        json:"date"`
	Amount     int64     `db:"amount"      json:"amount"`
	Status     string    `db:"status"      json:"status"`
}

// InvoiceForm holds an invoice prepared for an edit form, with the amount in
// currency units rather than cents.
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

type CustomerField struct {
	ID   string `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

type CustomersTableRaw struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	ImageURL      string `db:"image_url"`
	TotalInvoices int64  `db:"total_invoices"`
	TotalPending  int64  `db:"total_pending"`
	TotalPaid     int64  `db:"total_paid"`
}

type CustomersTable struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

type CardData struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type InvoiceAmount struct {
	Amount int64  `db:"amount" json:"amount"`
	Name   string `db:"name"   json:"name"`
}

// FormState is the outcome of a rejected form submission: per-field messages
// plus a summary. It is data for display, not an error.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}
