package seedservice

import (
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
)

// Passwords in seedUsers are cleartext and are hashed before insertion.
var seedUsers = []domain.User{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var seedCustomers = []domain.Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "CC27C14A-0ACF-4F4A-A6C9-D45682C144B9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13D07535-C59E-4157-A011-F8D2EF4E0CBB",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Invoice ids are fixed so reseeding does not duplicate rows.
var seedInvoices = []domain.Invoice{
	{ID: "a1f0b3c2-0001-4e6b-9d1a-6f4c2b8e0a01", CustomerID: seedCustomers[0].ID, Amount: 15795, Status: domain.InvoiceStatusPending, Date: day(2022, time.December, 6)},
	{ID: "a1f0b3c2-0002-4e6b-9d1a-6f4c2b8e0a02", CustomerID: seedCustomers[1].ID, Amount: 20348, Status: domain.InvoiceStatusPending, Date: day(2022, time.November, 14)},
	{ID: "a1f0b3c2-0003-4e6b-9d1a-6f4c2b8e0a03", CustomerID: seedCustomers[4].ID, Amount: 3040, Status: domain.InvoiceStatusPaid, Date: day(2022, time.October, 29)},
	{ID: "a1f0b3c2-0004-4e6b-9d1a-6f4c2b8e0a04", CustomerID: seedCustomers[3].ID, Amount: 44800, Status: domain.InvoiceStatusPaid, Date: day(2023, time.September, 10)},
	{ID: "a1f0b3c2-0005-4e6b-9d1a-6f4c2b8e0a05", CustomerID: seedCustomers[5].ID, Amount: 34577, Status: domain.InvoiceStatusPending, Date: day(2023, time.August, 5)},
	{ID: "a1f0b3c2-0006-4e6b-9d1a-6f4c2b8e0a06", CustomerID: seedCustomers[2].ID, Amount: 54246, Status: domain.InvoiceStatusPending, Date: day(2023, time.July, 16)},
	{ID: "a1f0b3c2-0007-4e6b-9d1a-6f4c2b8e0a07", CustomerID: seedCustomers[0].ID, Amount: 666, Status: domain.InvoiceStatusPending, Date: day(2023, time.June, 27)},
	{ID: "a1f0b3c2-0008-4e6b-9d1a-6f4c2b8e0a08", CustomerID: seedCustomers[3].ID, Amount: 32545, Status: domain.InvoiceStatusPaid, Date: day(2023, time.June, 9)},
	{ID: "a1f0b3c2-0009-4e6b-9d1a-6f4c2b8e0a09", CustomerID: seedCustomers[4].ID, Amount: 1250, Status: domain.InvoiceStatusPaid, Date: day(2023, time.June, 17)},
	{ID: "a1f0b3c2-0010-4e6b-9d1a-6f4c2b8e0a10", CustomerID: seedCustomers[5].ID, Amount: 8546, Status: domain.InvoiceStatusPaid, Date: day(2023, time.June, 7)},
	{ID: "a1f0b3c2-0011-4e6b-9d1a-6f4c2b8e0a11", CustomerID: seedCustomers[1].ID, Amount: 500, Status: domain.InvoiceStatusPaid, Date: day(2023, time.August, 19)},
	{ID: "a1f0b3c2-0012-4e6b-9d1a-6f4c2b8e0a12", CustomerID: seedCustomers[5].ID, Amount: 8945, Status: domain.InvoiceStatusPaid, Date: day(2023, time.June, 3)},
	{ID: "a1f0b3c2-0013-4e6b-9d1a-6f4c2b8e0a13", CustomerID: seedCustomers[2].ID, Amount: 1000, Status: domain.InvoiceStatusPaid, Date: day(2022, time.June, 5)},
}

var seedRevenue = []domain.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
