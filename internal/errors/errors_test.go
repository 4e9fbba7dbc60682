package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrReadIDFile.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeInput {
		t.Errorf("Expected type %s, got %s", TypeInput, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrWriteSheet.WithContext("path", "tickets.xlsx").WithContext("attempt", 3)

	if appErr.Context["path"] != "tickets.xlsx" {
		t.Errorf("Expected path context 'tickets.xlsx', got %v", appErr.Context["path"])
	}

	if appErr.Context["attempt"] != 3 {
		t.Errorf("Expected attempt context 3, got %v", appErr.Context["attempt"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrMissingToken,
			contains: []string{
				"AUTH",
				"API token is not configured",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrReadIDFile.WithError(errors.New("no such file or directory")),
			contains: []string{
				"INPUT",
				"Failed to read the ticket ID file",
				"no such file or directory",
			},
		},
		{
			name: "HTTP error carries the requested path",
			err:  NewHTTPError(404, "404 Not Found", "/tickets/12345678"),
			contains: []string{
				"API",
				"404 Not Found",
				"/tickets/12345678",
			},
		},
		{
			name: "Malformed ID error names the line number",
			err:  NewMalformedIDError(3, "1234567"),
			contains: []string{
				"INPUT",
				"Line 3",
				"1234567",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("boom")
	appErr := ErrDecodeTicket.WithError(baseErr)

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should see the wrapped cause")
	}
}

func TestAppError_WithSuggestion(t *testing.T) {
	appErr := NewAppError(TypeOutput, "write failed", nil).WithSuggestion("close the file first")

	if appErr.Suggestion != "close the file first" {
		t.Errorf("Expected suggestion to be set, got %q", appErr.Suggestion)
	}
}
