package domain

import "time"

const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
)

type User struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

type Customer struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
}

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	Amount     int64     `db:"amount"`
	Status     string    `db:"status"`
	Date       time.Time `db:"date"`
}

type Revenue struct {
	Month   string `db:"month"   json:"month"`
	Revenue int64  `db:"revenue" json:"revenue"`
}
