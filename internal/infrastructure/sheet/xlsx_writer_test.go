package sheet

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []models.NormalizedRow {
	return []models.NormalizedRow{
		{
			Date:            time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			ID:              "12345678",
			Vendor:          "Acme Corp",
			Status:          "Closed",
			Product:         "Acme Grader",
			IsRenewal:       "Renewal",
			SWType:          "SaaS",
			InfoClass:       "Level 2",
			Quantity:        5,
			TechCoordinator: "jdoe42",
			Requestor:       "Jane Roe",
			Risk:            "M",
			Summary: models.SummaryFields{
				DateCompleted: "01/02/2023",
				ReviewedBy:    "J. S.",
				Notes:         "Some notes here.",
			},
		},
		{
			ID:        "87654321",
			Status:    "Open",
			Product:   "Other Tool",
			IsRenewal: "New",
		},
	}
}

func TestWriteRows(t *testing.T) {
	t.Run("escribe encabezado y una fila por ticket", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.xlsx")
		writer := NewXLSXWriter()

		err := writer.WriteRows(path, sampleRows())
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() {
			_ = f.Close()
		}()

		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 3, "encabezado + dos tickets")

		assert.Equal(t, "Date", rows[0][0])
		assert.Equal(t, "ID", rows[0][2])

		assert.Equal(t, "01/02/2023", rows[1][0], "la fecha se formatea MM/DD/YYYY")
		assert.Equal(t, "12345678", rows[1][2])
		assert.Equal(t, "Acme Corp", rows[1][3])
		assert.Equal(t, "5", rows[1][10])
		assert.Equal(t, "Some notes here.", rows[1][16])

		assert.Equal(t, "", rows[2][0], "fecha cero queda vacía")
		assert.Equal(t, "87654321", rows[2][2])
	})

	t.Run("sobrescribe un archivo existente", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.xlsx")
		writer := NewXLSXWriter()

		require.NoError(t, writer.WriteRows(path, sampleRows()))
		require.NoError(t, writer.WriteRows(path, sampleRows()[:1]))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() {
			_ = f.Close()
		}()

		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		assert.Len(t, rows, 2, "la segunda escritura reemplaza el contenido")
	})

	t.Run("falla con un error que no es de archivo ocupado", func(t *testing.T) {
		writer := NewXLSXWriter()

		err := writer.WriteRows(filepath.Join(t.TempDir(), "no-existe", "tickets.xlsx"), sampleRows())

		assert.Error(t, err)
	})
}

func TestIsBusy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"EBUSY", syscall.EBUSY, true},
		{"EBUSY envuelto", errors.Join(errors.New("save failed"), syscall.EBUSY), true},
		{"mensaje de windows", errors.New("The process cannot access the file because it is being used by another process."), true},
		{"otro error", errors.New("permission denied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isBusy(tt.err))
		})
	}
}
