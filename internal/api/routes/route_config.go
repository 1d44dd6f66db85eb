package routes

import (
	"Gastos-API/internal/api/handlers"
	"Gastos-API/internal/middleware"
	"Gastos-API/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ExpenseHandler handlers.ExpenseHandler
	BillHandler    handlers.BillHandler
	SettingHandler handlers.SettingHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Expenses()
	c.Bills()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Expenses() {
	expenses := c.App.Group("/api/v1/expenses", c.Middleware.AuthMiddleware(c.JWTService))

	expenses.Get("/summary", c.ExpenseHandler.MonthlySummary)

	// Basic CRUD operations
	expenses.Post("", c.ExpenseHandler.CreateExpense)
	expenses.Get("", c.ExpenseHandler.GetExpenses)
	expenses.Get("/:id", c.ExpenseHandler.GetExpenseByID)
	expenses.Put("/:id", c.ExpenseHandler.UpdateExpense)
	expenses.Delete("/:id", c.ExpenseHandler.DeleteExpense)

	c.App.Get("/api/v1/export", c.Middleware.AuthMiddleware(c.JWTService), c.ExpenseHandler.Export)
}

func (c *Config) Bills() {
	bills := c.App.Group("/api/v1/processBill", c.Middleware.AuthMiddleware(c.JWTService))

	bills.Post("/text", c.BillHandler.ProcessText)
	bills.Post("/bill-photo", c.BillHandler.ProcessPhoto)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))

	settings.Get("", c.SettingHandler.GetSetting)
	settings.Put("", c.SettingHandler.SaveSetting)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
