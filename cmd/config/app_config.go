package config

import (
	"Gastos-API/internal/api/handlers"
	"Gastos-API/internal/api/routes"
	"Gastos-API/internal/middleware"
	"Gastos-API/internal/utils"
	"Gastos-API/internal/utils/storage"
	"Gastos-API/pkg/bill"
	"Gastos-API/pkg/expense"
	"Gastos-API/pkg/jwt"
	applogger "Gastos-API/pkg/logger"
	"Gastos-API/pkg/setting"
	"Gastos-API/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Costa_Rica",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	expenseRepository := expense.NewExpenseRepository(db)
	settingRepository := setting.NewSettingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	expenseService := expense.NewExpenseService(expenseRepository, settingRepository)
	settingService := setting.NewSettingService(settingRepository)
	billService := bill.NewBillService(
		bill.NewGeminiExtractor(),
		expenseRepository,
		s3,
		applogger.Get(),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, applogger.Get())
	expenseHandler := handlers.NewExpenseHandler(expenseService, validator, applogger.Get())
	billHandler := handlers.NewBillHandler(billService, validator, applogger.Get())
	settingHandler := handlers.NewSettingHandler(settingService, validator, applogger.Get())

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ExpenseHandler: expenseHandler,
		BillHandler:    billHandler,
		SettingHandler: settingHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
