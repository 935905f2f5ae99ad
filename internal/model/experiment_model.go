package model

type Experiment struct {
	Id            int64   `gorm:"primaryKey;autoIncrement"`
	NotebookId    int64   `gorm:"not null;index:idx_experiments_notebook_date,priority:1"`
	Title         string  `gorm:"type:text;not null"`
	Date          string  `gorm:"type:text;not null;index:idx_experiments_notebook_date,priority:2"`
	Objective     *string `gorm:"type:text"`
	Materials     *string `gorm:"type:text"`
	Procedure     *string `gorm:"type:text"`
	Results       *string `gorm:"type:text"`
	Notes         *string `gorm:"type:text"`
	CreatedAt     string  `gorm:"type:text;not null;autoCreateTime:false"`
	ReactionImage *string `gorm:"type:text"`
}

func (Experiment) TableName() string {
	return "experiments"
}

// ExperimentOptionalColumns are the nullable columns that may be missing from
// databases created by older releases. They are appended by schema migration.
var ExperimentOptionalColumns = []string{
	"objective",
	"materials",
	"procedure",
	"results",
	"notes",
	"reaction_image",
}
