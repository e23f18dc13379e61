package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceForm struct {
	CustomerID string          `json:"customerId" validate:"required"                    message:"Please select a customer."`
	Amount     decimal.Decimal `json:"amount"     validate:"gt=0"                        message:"Please enter an amount greater than $0."`
	Status     string          `json:"status"     validate:"required,oneof=paid pending" message:"Please select an invoice status."`
	Note       string          `json:"note"       validate:"max=3"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    invoiceForm
		expected FieldErrors
	}{
		{
			name: "Valid form",
			input: invoiceForm{
				CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Amount:     decimal.RequireFromString("157.95"),
				Status:     "paid",
			},
			expected: nil,
		},
		{
			name:  "All fields missing",
			input: invoiceForm{},
			expected: FieldErrors{
				"customerId": {"Please select a customer."},
				"amount":     {"Please enter an amount greater than $0."},
				"status":     {"Please select an invoice status."},
			},
		},
		{
			name: "Negative amount and unknown status",
			input: invoiceForm{
				CustomerID: "c1",
				Amount:     decimal.RequireFromString("-1"),
				Status:     "overdue",
			},
			expected: FieldErrors{
				"amount": {"Please enter an amount greater than $0."},
				"status": {"Please select an invoice status."},
			},
		},
		{
			name: "Fallback message",
			input: invoiceForm{
				CustomerID: "c1",
				Amount:     decimal.RequireFromString("0.01"),
				Status:     "pending",
				Note:       "too long",
			},
			expected: FieldErrors{
				"note": {"Invalid value."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors, err := v.Struct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fieldErrors)
		})
	}
}

func TestValidator_StructPointer(t *testing.T) {
	fieldErrors, err := New().Struct(&invoiceForm{CustomerID: "c1", Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, FieldErrors{"amount": {"Please enter an amount greater than $0."}}, fieldErrors)
}

func TestValidator_NotAStruct(t *testing.T) {
	_, err := New().Struct("customer")
	assert.Error(t, err)
}
