package controllers

import (
	"strconv"
	"strings"

	"invoiceflow-backend/database"
	"invoiceflow-backend/middlewares"
	"invoiceflow-backend/models"
	"invoiceflow-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity" validate:"min=1"`
	Rate        float64 `json:"rate" validate:"gte=0"`
	// Amount is accepted but ignored; it is always recomputed server-side.
	Amount float64 `json:"amount"`
}

type InvoiceInput struct {
	InvoiceNumber string          `json:"invoiceNumber" validate:"required"`
	ClientName    string          `json:"clientName" validate:"required"`
	ClientEmail   string          `json:"clientEmail" validate:"required,email"`
	ClientAddress string          `json:"clientAddress" validate:"required"`
	IssueDate     string          `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate       string          `json:"dueDate" validate:"required,datetime=2006-01-02"`
	LineItems     []LineItemInput `json:"lineItems" validate:"required,min=1,dive"`
	Tax           float64         `json:"tax" validate:"gte=0"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
}

// toModel maps the validated input to a domain record with coerced
// numerics and freshly derived amounts and totals.
func (in *InvoiceInput) toModel() models.Invoice {
	items := make([]models.LineItem, len(in.LineItems))
	for i, it := range in.LineItems {
		items[i] = models.LineItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    models.CoerceQuantity(it.Quantity),
			Rate:        models.CoerceRate(it.Rate),
		}
	}
	status := models.Status(in.Status)
	if !status.Valid() {
		status = models.StatusDraft
	}
	inv := models.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientAddress: in.ClientAddress,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		LineItems:     items,
		Tax:           in.Tax,
		Notes:         in.Notes,
		Status:        status,
	}
	inv.Recalculate()
	return inv
}

func CreateInvoice(c *fiber.Ctx) error {
	var input InvoiceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizeDTO(&input)
	if err := middlewares.ValidateStruct(&input); err != nil {
		return err
	}

	created, err := database.Store.Create(input.toModel())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func GetInvoices(c *fiber.Ctx) error {
	invoices, err := database.Store.GetAll()
	if err != nil {
		return err
	}

	status := c.Query("status")
	if status != "" && status != "all" {
		filtered := invoices[:0:0]
		for _, inv := range invoices {
			if inv.Status == models.Status(status) {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	if term := strings.ToLower(strings.TrimSpace(c.Query("search"))); term != "" {
		filtered := invoices[:0:0]
		for _, inv := range invoices {
			if strings.Contains(strings.ToLower(inv.InvoiceNumber), term) ||
				strings.Contains(strings.ToLower(inv.ClientName), term) ||
				strings.Contains(strings.ToLower(inv.ClientEmail), term) {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return c.JSON(fiber.Map{
		"invoices": invoices,
		"message":  "success",
	})
}

func GetInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	invoice, err := database.Store.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

func UpdateInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	var input InvoiceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizeDTO(&input)
	if err := middlewares.ValidateStruct(&input); err != nil {
		return err
	}

	updated, err := database.Store.Update(id, input.toModel())
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func DeleteInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	if err := database.Store.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "invoice deleted"})
}
