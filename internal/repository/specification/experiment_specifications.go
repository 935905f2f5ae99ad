package specification

import (
	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/repository/scope"

	"gorm.io/gorm"
)

type ByNotebookID struct {
	NotebookID int64
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

// OnDate matches an exact experiment date.
type OnDate struct {
	Date string
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

// DateBetween is an inclusive range; either bound may be empty.
type DateBetween struct {
	Start string
	End   string
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Start != "" {
		db = db.Where("date >= ?", s.Start)
	}
	if s.End != "" {
		db = db.Where("date <= ?", s.End)
	}
	return db
}

// TitleContains is a substring match using the store's LIKE collation.
type TitleContains struct {
	Title string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title LIKE ?", "%"+s.Title+"%")
}

// ExperimentListing builds the specifications for a filtered experiment list.
// An exact date wins over the range bounds; the title filter applies either way.
// Results are ordered by date, then id.
func ExperimentListing(f entity.ExperimentFilter) []Specification {
	specs := []Specification{ByNotebookID{NotebookID: f.NotebookId}}

	if f.Date != "" {
		specs = append(specs, OnDate{Date: f.Date})
	} else if f.StartDate != "" || f.EndDate != "" {
		specs = append(specs, DateBetween{Start: f.StartDate, End: f.EndDate})
	}

	if f.Title != "" {
		specs = append(specs, TitleContains{Title: f.Title})
	}

	return append(specs, Scope(scope.OrderByDateThenID))
}
