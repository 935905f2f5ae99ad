package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func baseExperiment() Experiment {
	return Experiment{
		Id:         3,
		NotebookId: 1,
		Title:      "EXP-003",
		Date:       "2024-01-05",
		Objective:  str("isolate the aldol adduct"),
		Materials:  str("benzaldehyde, acetone, NaOH"),
		Procedure:  str("<p>stir 2h</p>"),
		Notes:      str("yellow precipitate"),
		CreatedAt:  "2024-01-05T08:00:00.000000",
	}
}

func TestMergeExperiment(t *testing.T) {
	tests := []struct {
		name  string
		patch ExperimentPatch
		check func(t *testing.T, got Experiment)
	}{
		{
			name:  "only results supplied",
			patch: ExperimentPatch{Results: str("done")},
			check: func(t *testing.T, got Experiment) {
				want := baseExperiment()
				want.Results = str("done")
				assert.Equal(t, want, got)
			},
		},
		{
			name:  "empty patch keeps everything",
			patch: ExperimentPatch{},
			check: func(t *testing.T, got Experiment) {
				assert.Equal(t, baseExperiment(), got)
			},
		},
		{
			name:  "empty string is a value, not an absence",
			patch: ExperimentPatch{Notes: str(""), Title: str("")},
			check: func(t *testing.T, got Experiment) {
				assert.Equal(t, "", got.Title)
				assert.Equal(t, str(""), got.Notes)
				assert.Equal(t, str("isolate the aldol adduct"), got.Objective)
			},
		},
		{
			name: "every mutable field replaced",
			patch: ExperimentPatch{
				Title:         str("EXP-004"),
				Date:          str("2024-02-01"),
				Objective:     str("repeat at 0 C"),
				Materials:     str("benzaldehyde, acetone, KOH"),
				Procedure:     str("reflux"),
				Results:       str("82% yield"),
				Notes:         str("white solid"),
				ReactionImage: str("/static/reactions/abc.png"),
			},
			check: func(t *testing.T, got Experiment) {
				assert.Equal(t, int64(3), got.Id)
				assert.Equal(t, int64(1), got.NotebookId)
				assert.Equal(t, "2024-01-05T08:00:00.000000", got.CreatedAt)
				assert.Equal(t, "EXP-004", got.Title)
				assert.Equal(t, "2024-02-01", got.Date)
				assert.Equal(t, str("/static/reactions/abc.png"), got.ReactionImage)
				assert.Equal(t, str("82% yield"), got.Results)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, MergeExperiment(baseExperiment(), tt.patch))
		})
	}
}

func TestMergeExperimentDoesNotAliasPatch(t *testing.T) {
	results := "done"
	merged := MergeExperiment(baseExperiment(), ExperimentPatch{Results: &results})
	results = "changed later"

	assert.Equal(t, "done", *merged.Results)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 31, 23, 59, 58, 123456000, time.FixedZone("CET", 3600))
	assert.Equal(t, "2024-01-31T22:59:58.123456", FormatTimestamp(ts))
}
