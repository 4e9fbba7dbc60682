package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTicketFetcher es un mock para ports.TicketFetcher
type MockTicketFetcher struct {
	mock.Mock
}

func (m *MockTicketFetcher) FetchTicket(ctx context.Context, ticketID string) (*models.NormalizedRow, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NormalizedRow), args.Error(1)
}

// MockSheetWriter es un mock para ports.SheetWriter
type MockSheetWriter struct {
	mock.Mock
}

func (m *MockSheetWriter) WriteRows(path string, rows []models.NormalizedRow) error {
	args := m.Called(path, rows)
	return args.Error(0)
}

func TestExport_Success(t *testing.T) {
	// arrange
	fetcher := new(MockTicketFetcher)
	writer := new(MockSheetWriter)
	service := NewExportService(fetcher, writer)

	rowA := &models.NormalizedRow{ID: "12345678", Product: "Tool A"}
	rowB := &models.NormalizedRow{ID: "87654321", Product: "Tool B"}

	fetcher.On("FetchTicket", mock.Anything, "12345678").Return(rowA, nil).Once()
	fetcher.On("FetchTicket", mock.Anything, "87654321").Return(rowB, nil).Once()
	writer.On("WriteRows", "out.xlsx", []models.NormalizedRow{*rowA, *rowB}).Return(nil).Once()

	// act
	rows, err := service.Export(context.Background(), []string{"12345678", "87654321"}, "out.xlsx")

	// assert
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "12345678", rows[0].ID, "las filas conservan el orden de entrada")
	assert.Equal(t, "87654321", rows[1].ID)
	fetcher.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestExport_DuplicateIDsProduceDuplicateRows(t *testing.T) {
	// arrange
	fetcher := new(MockTicketFetcher)
	writer := new(MockSheetWriter)
	service := NewExportService(fetcher, writer)

	row := &models.NormalizedRow{ID: "12345678"}
	fetcher.On("FetchTicket", mock.Anything, "12345678").Return(row, nil).Twice()
	writer.On("WriteRows", mock.Anything, mock.Anything).Return(nil).Once()

	// act
	rows, err := service.Export(context.Background(), []string{"12345678", "12345678"}, "out.xlsx")

	// assert
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	fetcher.AssertExpectations(t)
}

func TestExport_FetchErrorAbortsBatch(t *testing.T) {
	// arrange
	fetcher := new(MockTicketFetcher)
	writer := new(MockSheetWriter)
	service := NewExportService(fetcher, writer)

	fetchErr := errors.New("boom")
	fetcher.On("FetchTicket", mock.Anything, "12345678").
		Return(&models.NormalizedRow{ID: "12345678"}, nil).Once()
	fetcher.On("FetchTicket", mock.Anything, "87654321").Return(nil, fetchErr).Once()

	// act
	rows, err := service.Export(context.Background(), []string{"12345678", "87654321", "11112222"}, "out.xlsx")

	// assert
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, fetchErr)
	fetcher.AssertExpectations(t)
	fetcher.AssertNotCalled(t, "FetchTicket", mock.Anything, "11112222")
	writer.AssertNotCalled(t, "WriteRows", mock.Anything, mock.Anything)
}

func TestExport_WriteErrorPropagates(t *testing.T) {
	// arrange
	fetcher := new(MockTicketFetcher)
	writer := new(MockSheetWriter)
	service := NewExportService(fetcher, writer)

	writeErr := errors.New("disk full")
	fetcher.On("FetchTicket", mock.Anything, "12345678").
		Return(&models.NormalizedRow{ID: "12345678"}, nil).Once()
	writer.On("WriteRows", mock.Anything, mock.Anything).Return(writeErr).Once()

	// act
	rows, err := service.Export(context.Background(), []string{"12345678"}, "out.xlsx")

	// assert
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, writeErr)
	writer.AssertExpectations(t)
}

func TestExport_ProgressCallback(t *testing.T) {
	// arrange
	fetcher := new(MockTicketFetcher)
	writer := new(MockSheetWriter)
	service := NewExportService(fetcher, writer)

	fetcher.On("FetchTicket", mock.Anything, mock.Anything).
		Return(&models.NormalizedRow{}, nil).Times(3)
	writer.On("WriteRows", mock.Anything, mock.Anything).Return(nil).Once()

	var reported [][2]int
	service.SetProgress(func(processed, total int) {
		reported = append(reported, [2]int{processed, total})
	})

	// act
	_, err := service.Export(context.Background(), []string{"11111111", "22222222", "33333333"}, "out.xlsx")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, reported)
}
