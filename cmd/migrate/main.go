package main

import (
	"log"

	"lab-notebook-be/internal/config"
	"lab-notebook-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Open the database file
	db, err := database.NewSQLiteDB(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		log.Fatal("Error: Failed to open database:", err)
	}
	defer database.Close(db)

	// 3. Create missing tables, columns and indexes
	log.Printf("Migrating schema in %s...", cfg.Database.Path)
	if err := database.InitSchema(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migration completed successfully!")
}
