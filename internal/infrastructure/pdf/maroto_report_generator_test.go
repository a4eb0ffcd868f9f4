package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

func TestGenerateDailyReportPDF(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	report := &entity.DailyReport{
		ID: "r-1", ProjectID: "p-1", Date: &day, Author: "Ana Ruiz", Weather: "Soleado", Workers: 23,
		Activities: "Fundida de placa piso 3\nArmado de columnas eje B",
		Incidents:  "Retraso de concretera 40 min",
	}
	project := &entity.Project{ID: "p-1", Name: "Torre Norte", Client: "Inversiones Andes"}

	out, err := NewMarotoReportGenerator("Constructora").GenerateDailyReportPDF(context.Background(), report, project)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDailyReportPDF_Nil(t *testing.T) {
	_, err := NewMarotoReportGenerator("x").GenerateDailyReportPDF(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestReportDate(t *testing.T) {
	assert.Equal(t, "-", reportDate(&entity.DailyReport{}))
	d := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/01/2026", reportDate(&entity.DailyReport{Date: &d}))
}
