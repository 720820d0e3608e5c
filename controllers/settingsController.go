package controllers

import (
	"invoiceflow-backend/database"
	"invoiceflow-backend/middlewares"
	"invoiceflow-backend/models"

	"github.com/gofiber/fiber/v2"
)

type APIConfigInput struct {
	Provider string `json:"provider" validate:"required,oneof=stripe paypal square custom"`
	APIKey   string `json:"apiKey" validate:"required"`
	IsValid  bool   `json:"isValid"`
}

func GetSettings(c *fiber.Ctx) error {
	cfg, err := database.Settings.Load()
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

func SaveSettings(c *fiber.Ctx) error {
	var input APIConfigInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	cfg := models.APIConfig{
		Provider: input.Provider,
		APIKey:   input.APIKey,
		IsValid:  input.IsValid,
	}
	if err := database.Settings.Save(cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "settings saved",
		"config":  cfg,
	})
}

func ClearSettings(c *fiber.Ctx) error {
	if err := database.Settings.Clear(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "settings cleared"})
}

// TestSettings simulates a provider credential check without saving
// anything; the client saves explicitly once satisfied.
func TestSettings(c *fiber.Ctx) error {
	var input APIConfigInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	valid := database.Settings.TestConnection(models.APIConfig{
		Provider: input.Provider,
		APIKey:   input.APIKey,
	})
	if !valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "invalid API key",
			"isValid": false,
		})
	}
	return c.JSON(fiber.Map{
		"message": "API connection successful",
		"isValid": true,
	})
}
