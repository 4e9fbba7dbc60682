package ports

import "github.com/Tomas-vilte/MateTickets/internal/domain/models"

type SheetWriter interface {
	WriteRows(path string, rows []models.NormalizedRow) error
}
