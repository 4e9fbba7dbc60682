package sheet

import (
	"errors"
	"strings"
	"syscall"
	"time"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	apperrors "github.com/Tomas-vilte/MateTickets/internal/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Tickets"

	// Pausa entre reintentos mientras el archivo de salida esté abierto
	// en otro programa
	busyRetryWait = 500 * time.Millisecond
)

// Orden fijo de columnas de la planilla
var headers = []interface{}{
	"Date", "Rush", "ID", "Vendor", "Status", "Product", "Description",
	"Renewal", "Software Type", "Info Class", "Quantity",
	"Tech Coordinator", "Requestor", "Risk",
	"Date Completed", "Reviewed By", "Notes", "",
}

// XLSXWriter escribe las filas normalizadas en una planilla de una sola
// hoja. Sobrescribe el archivo sin condiciones una vez que es escribible;
// mientras esté bloqueado por otro proceso reintenta indefinidamente.
type XLSXWriter struct {
	sleep  func(time.Duration)
	onBusy func()
}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{
		sleep: time.Sleep,
	}
}

// SetBusyHook registra el aviso al operador que se emite en cada espera
// por archivo bloqueado
func (w *XLSXWriter) SetBusyHook(hook func()) {
	w.onBusy = hook
}

func (w *XLSXWriter) WriteRows(path string, rows []models.NormalizedRow) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return apperrors.ErrWriteSheet.WithError(err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return apperrors.ErrWriteSheet.WithError(err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.ErrWriteSheet.WithError(err)
		}
		values := rowValues(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return apperrors.ErrWriteSheet.WithError(err)
		}
	}

	for {
		err := f.SaveAs(path)
		if err == nil {
			return nil
		}
		if !isBusy(err) {
			return apperrors.ErrWriteSheet.WithError(err).WithContext("path", path)
		}
		if w.onBusy != nil {
			w.onBusy()
		}
		w.sleep(busyRetryWait)
	}
}

func rowValues(row models.NormalizedRow) []interface{} {
	date := ""
	if !row.Date.IsZero() {
		date = row.Date.Format("01/02/2006")
	}

	return []interface{}{
		date,
		row.Rush,
		row.ID,
		row.Vendor,
		row.Status,
		row.Product,
		row.Description,
		row.IsRenewal,
		row.SWType,
		row.InfoClass,
		row.Quantity,
		row.TechCoordinator,
		row.Requestor,
		row.Risk,
		row.Summary.DateCompleted,
		row.Summary.ReviewedBy,
		row.Summary.Notes,
		"",
	}
}

// isBusy detecta la condición "resource busy" del sistema de archivos,
// típica cuando la planilla sigue abierta en un visor
func isBusy(err error) bool {
	if errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.ETXTBSY) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "resource busy") ||
		strings.Contains(msg, "being used by another process")
}
