package main

import (
	"context"
	"log"

	"lab-notebook-be/internal/config"
	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/repository/unitofwork"
	"lab-notebook-be/internal/service"
	"lab-notebook-be/pkg/database"
)

const demoNotebookName = "Demo: Organic Chemistry"

func strPtr(s string) *string { return &s }

func main() {
	ctx := context.Background()
	cfg := config.Load()

	db, err := database.NewSQLiteDB(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		log.Fatal("Error: Failed to open database:", err)
	}
	defer database.Close(db)

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Error: Failed to initialize schema:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	notebooks := service.NewNotebookService(uowFactory, logger.NewNopLogger())
	experiments := service.NewExperimentService(uowFactory, logger.NewNopLogger())

	existing, err := notebooks.GetAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to list notebooks:", err)
	}
	for _, n := range existing {
		if n.Name == demoNotebookName {
			log.Printf("Notebook '%s' already exists (id %d), skipping...", n.Name, n.Id)
			return
		}
	}

	log.Println("Seeding demo notebook...")
	notebook, err := notebooks.Create(ctx, &dto.CreateNotebookRequest{Name: demoNotebookName})
	if err != nil {
		log.Fatal("Error: Failed to create notebook:", err)
	}

	seeds := []dto.CreateExperimentRequest{
		{
			Title:     "Aspirin synthesis",
			Date:      "2024-03-04",
			Objective: strPtr("Acetylate salicylic acid with acetic anhydride"),
			Materials: strPtr("Salicylic acid 2.0 g, acetic anhydride 5 mL, H3PO4 (cat.)"),
			Procedure: strPtr("Heat at 85 C for 15 min, quench with water, recrystallize from ethanol"),
			Results:   strPtr("1.9 g white crystals, mp 134-136 C"),
		},
		{
			Title:     "Fischer esterification",
			Date:      "2024-03-11",
			Objective: strPtr("Prepare isoamyl acetate"),
			Notes:     strPtr("Reflux condenser leaked slightly; check joints next time"),
		},
		{
			Title: "TLC of crude products",
			Date:  "2024-03-11",
		},
	}

	for i := range seeds {
		seeds[i].NotebookId = &notebook.Id
		created, err := experiments.Create(ctx, &seeds[i])
		if err != nil {
			log.Printf("Error creating experiment '%s': %v", seeds[i].Title, err)
			continue
		}
		log.Printf("Created experiment: %s (id %d)", created.Title, created.Id)
	}

	log.Println("Demo seeding completed!")
}
