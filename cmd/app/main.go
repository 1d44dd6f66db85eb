package main

import (
	"log"

	"Gastos-API/cmd/config"
	migration "Gastos-API/cmd/database/migrate"
	"Gastos-API/internal/utils"
	"Gastos-API/pkg/logger"
)

func main() {
	utils.LoadConfig()

	if err := logger.Init(utils.GetConfig("LOG_LEVEL")); err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
