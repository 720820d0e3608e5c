package controllers

import (
	"sort"

	"invoiceflow-backend/database"
	"invoiceflow-backend/models"
	"invoiceflow-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type dashboardStats struct {
	Total       int     `json:"total"`
	Paid        int     `json:"paid"`
	Pending     int     `json:"pending"` // status "sent"
	Overdue     int     `json:"overdue"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	Outstanding float64 `json:"outstanding"`

	RecentInvoices []models.Invoice `json:"recentInvoices"`
}

// GetDashboard aggregates the invoice collection into the dashboard
// metrics: counts per status, revenue totals and the most recent
// invoices by creation time.
func GetDashboard(c *fiber.Ctx) error {
	invoices, err := database.Store.GetAll()
	if err != nil {
		return err
	}

	stats := dashboardStats{Total: len(invoices)}
	totalAmount := decimal.Zero
	paidAmount := decimal.Zero
	for _, inv := range invoices {
		totalAmount = totalAmount.Add(decimal.NewFromFloat(inv.Total))
		switch inv.Status {
		case models.StatusPaid:
			stats.Paid++
			paidAmount = paidAmount.Add(decimal.NewFromFloat(inv.Total))
		case models.StatusSent:
			stats.Pending++
		case models.StatusOverdue:
			stats.Overdue++
		}
	}
	total, _ := totalAmount.Float64()
	paid, _ := paidAmount.Float64()
	outstanding, _ := totalAmount.Sub(paidAmount).Float64()
	stats.TotalAmount = utils.Round2(total)
	stats.PaidAmount = utils.Round2(paid)
	stats.Outstanding = utils.Round2(outstanding)

	limit := utils.ParseIntDefault(c.Query("limit"), 5)
	recent := make([]models.Invoice, len(invoices))
	copy(recent, invoices)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	stats.RecentInvoices = recent

	return c.JSON(stats)
}
