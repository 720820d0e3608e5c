package database

import (
	"time"

	"invoiceflow-backend/models"
)

// SeedInvoices is the fixture the invoice slot is populated with on
// first use. Derived fields are recomputed at build time so the fixture
// can never drift out of consistency with the quantities and rates.
func SeedInvoices() []models.Invoice {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2024, month, d, 9, 0, 0, 0, time.UTC)
	}

	invoices := []models.Invoice{
		{
			ID:            1,
			InvoiceNumber: "INV-2024-001",
			ClientName:    "Acme Corporation",
			ClientEmail:   "billing@acme.example",
			ClientAddress: "1 Industrial Way, Springfield",
			IssueDate:     "2024-01-08",
			DueDate:       "2024-02-07",
			LineItems: []models.LineItem{
				{Description: "Website redesign", Quantity: 1, Rate: 1200},
				{Description: "Hosting (monthly)", Quantity: 12, Rate: 25},
			},
			Tax:       10,
			Status:    models.StatusPaid,
			CreatedAt: day(time.January, 8),
		},
		{
			ID:            2,
			InvoiceNumber: "INV-2024-002",
			ClientName:    "Northwind Traders",
			ClientEmail:   "accounts@northwind.example",
			ClientAddress: "42 Harbor Street, Portsmouth",
			IssueDate:     "2024-02-01",
			DueDate:       "2024-03-02",
			LineItems: []models.LineItem{
				{Description: "Logo design", Quantity: 1, Rate: 450},
				{Description: "Brand guidelines document", Quantity: 1, Rate: 800},
			},
			Tax:       0,
			Status:    models.StatusSent,
			CreatedAt: day(time.February, 1),
		},
		{
			ID:            3,
			InvoiceNumber: "INV-2024-003",
			ClientName:    "Globex GmbH",
			ClientEmail:   "finanzen@globex.example",
			ClientAddress: "Hauptstrasse 9, Berlin",
			IssueDate:     "2024-02-19",
			DueDate:       "2024-03-20",
			LineItems: []models.LineItem{
				{Description: "Technical consulting", Quantity: 8, Rate: 95},
			},
			Tax:       20,
			Notes:     "Hourly engagement, February.",
			Status:    models.StatusDraft,
			CreatedAt: day(time.February, 19),
		},
		{
			ID:            4,
			InvoiceNumber: "INV-2024-004",
			ClientName:    "Initech LLC",
			ClientEmail:   "ap@initech.example",
			ClientAddress: "500 Office Park Drive, Austin",
			IssueDate:     "2024-01-15",
			DueDate:       "2024-02-14",
			LineItems: []models.LineItem{
				{Description: "Maintenance retainer", Quantity: 3, Rate: 150},
				{Description: "SEO audit", Quantity: 1, Rate: 600},
			},
			Tax:       10,
			Status:    models.StatusOverdue,
			CreatedAt: day(time.January, 15),
		},
		{
			ID:            5,
			InvoiceNumber: "INV-2024-005",
			ClientName:    "Stark Industries",
			ClientEmail:   "procurement@stark.example",
			ClientAddress: "200 Park Avenue, New York",
			IssueDate:     "2024-03-04",
			DueDate:       "2024-04-03",
			LineItems: []models.LineItem{
				{Description: "Mobile app prototype", Quantity: 1, Rate: 2400},
			},
			Tax:       7.5,
			Notes:     "50% due on delivery.",
			Status:    models.StatusSent,
			CreatedAt: day(time.March, 4),
		},
	}

	for i := range invoices {
		invoices[i].Recalculate()
	}
	return invoices
}
