package migration

import (
	"Gastos-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Source{}); err != nil {
		log.Fatalf("Error migrating source database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Expense{}); err != nil {
		log.Fatalf("Error migrating expense database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InvoiceDetail{}); err != nil {
		log.Fatalf("Error migrating invoice detail database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Setting{}); err != nil {
		log.Fatalf("Error migrating setting database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
