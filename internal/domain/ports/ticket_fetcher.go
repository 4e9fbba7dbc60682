package ports

import (
	"context"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
)

type TicketFetcher interface {
	FetchTicket(ctx context.Context, ticketID string) (*models.NormalizedRow, error)
}
