package database

import (
	"fmt"

	"lab-notebook-be/internal/model"

	"gorm.io/gorm"
)

// InitSchema creates missing tables and appends missing nullable experiment
// columns. Existing columns are never dropped or renamed, so it is safe to run
// on every start.
func InitSchema(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, m := range []interface{}{&model.Notebook{}, &model.Experiment{}} {
		if migrator.HasTable(m) {
			continue
		}
		if err := migrator.CreateTable(m); err != nil {
			return fmt.Errorf("create table %T: %w", m, err)
		}
	}

	// Databases created before a column existed get it appended here.
	for _, column := range model.ExperimentOptionalColumns {
		if migrator.HasColumn(&model.Experiment{}, column) {
			continue
		}
		if err := migrator.AddColumn(&model.Experiment{}, column); err != nil {
			return fmt.Errorf("add experiments.%s: %w", column, err)
		}
	}

	if !migrator.HasIndex(&model.Experiment{}, "idx_experiments_notebook_date") {
		if err := migrator.CreateIndex(&model.Experiment{}, "idx_experiments_notebook_date"); err != nil {
			return fmt.Errorf("create experiments index: %w", err)
		}
	}

	return nil
}
