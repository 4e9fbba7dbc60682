package services

import (
	"context"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	"github.com/Tomas-vilte/MateTickets/internal/domain/ports"
	"github.com/Tomas-vilte/MateTickets/internal/logger"
)

// ProgressFunc recibe el avance del lote después de cada ticket procesado
type ProgressFunc func(processed, total int)

// ExportService orquesta la exportación: recorre los IDs en el orden del
// archivo de entrada, obtiene una fila por ticket y entrega el lote
// completo al escritor de planillas exactamente una vez.
type ExportService struct {
	fetcher  ports.TicketFetcher
	writer   ports.SheetWriter
	progress ProgressFunc
}

func NewExportService(fetcher ports.TicketFetcher, writer ports.SheetWriter) *ExportService {
	return &ExportService{
		fetcher: fetcher,
		writer:  writer,
	}
}

// SetProgress registra el callback de avance del lote
func (s *ExportService) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// Export procesa los tickets secuencialmente, uno a la vez. El primer
// error de fetch aborta el lote completo: no hay salteo por ticket ni
// salida parcial.
func (s *ExportService) Export(ctx context.Context, ids []string, outputPath string) ([]models.NormalizedRow, error) {
	rows := make([]models.NormalizedRow, 0, len(ids))

	for i, id := range ids {
		row, err := s.fetcher.FetchTicket(ctx, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)

		logger.Debug(ctx, "ticket procesado", "ticket_id", id, "processed", i+1, "total", len(ids))

		if s.progress != nil {
			s.progress(i+1, len(ids))
		}
	}

	if err := s.writer.WriteRows(outputPath, rows); err != nil {
		return nil, err
	}

	logger.Info(ctx, "exportación completa", "count", len(rows), "path", outputPath)

	return rows, nil
}
