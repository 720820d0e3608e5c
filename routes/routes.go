package routes

import (
	"github.com/gofiber/fiber/v2"

	"invoiceflow-backend/controllers"
	"invoiceflow-backend/database"
	"invoiceflow-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Idempotency guard for mutating endpoints
	api.Use(middlewares.Idempotency(database.Keys))

	// Dashboard
	api.Get("/dashboard", controllers.GetDashboard)

	// Invoices
	api.Post("/invoice", controllers.CreateInvoice)
	api.Get("/invoices", controllers.GetInvoices)
	api.Get("/invoice/:id", controllers.GetInvoice)
	api.Put("/invoices/:id", controllers.UpdateInvoice)
	api.Delete("/invoices/:id", controllers.DeleteInvoice)

	// API settings
	api.Get("/settings", controllers.GetSettings)
	api.Put("/settings", controllers.SaveSettings)
	api.Delete("/settings", controllers.ClearSettings)
	api.Post("/settings/test", controllers.TestSettings)
}
