package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/geomap"
	"github.com/nurpe/obras-portal/internal/model"
)

func sampleProject() model.Project {
	return model.Project{
		ID:              "proj-001",
		Name:            "Reabilitação da Av. Principal",
		Location:        "Av. Principal, Block 12-18",
		City:            "San Miguel",
		District:        "Region Norte",
		Status:          model.StatusInProgress,
		Progress:        67,
		LastUpdate:      "2026-02-08",
		Lat:             -12.078,
		Lng:             -77.086,
		ContractID:      "CP-2025-0142",
		ExpectedEndDate: "2026-08-30",
		Milestones: []model.ProjectMilestone{
			{ID: "m1", Label: "Inicio", Date: "2025-06-15", Completed: true},
			{ID: "m2", Label: "Entrega", Date: "2026-08-30"},
		},
		Updates: []model.ProjectUpdate{
			{ID: "u1", Date: "2026-02-08", Title: "Asfalto", Description: "Primeira camada aplicada.", Author: "Eng. Maria"},
		},
	}
}

func TestGenerator_ProjectSheet(t *testing.T) {
	cal := model.Calendar{
		ProjectID: "proj-001",
		Month:     "2026-02",
		Days: []model.CalendarDay{{
			Date:      "2026-02-08",
			Indicator: model.IndicatorUpdate,
			Entries:   []model.CalendarEntry{{Kind: model.EntryUpdate, ID: "u1", Label: "Asfalto"}},
		}},
	}
	content, err := NewGenerator().ProjectSheet(sampleProject(), cal)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestGenerator_ProjectSheetWithoutHistory(t *testing.T) {
	p := sampleProject()
	p.Updates = nil
	p.Milestones = nil
	content, err := NewGenerator().ProjectSheet(p, model.Calendar{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestGenerator_Map(t *testing.T) {
	p := sampleProject()
	state := geomap.State{
		Viewport:    geomap.Viewport{Width: 800, Height: 500},
		Projects:    []model.Project{p},
		Center:      p.Coordinates(),
		Zoom:        14,
		Highlighted: p.ID,
	}
	content, err := NewGenerator().Map(state, "Obras - San Miguel")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))

	_, err = NewGenerator().Map(geomap.State{}, "vazio")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "30/08/2026", formatDate("2026-08-30"))
	assert.Equal(t, "-", formatDate(""))
	assert.Equal(t, "amanha", formatDate("amanha"))
}
