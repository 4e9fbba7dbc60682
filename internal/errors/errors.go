package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAuth          ErrorType = "AUTH"
	TypeAPI           ErrorType = "API"
	TypeInput         ErrorType = "INPUT"
	TypeOutput        ErrorType = "OUTPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" - %s", path)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Startup errors
var (
	ErrMissingToken = NewAppError(TypeAuth, "API token is not configured", nil).
			WithSuggestion("Export the token first: export TDX_API_TOKEN=<your-token>")

	ErrMissingBaseURL = NewAppError(TypeConfiguration, "Ticket service base URL is not configured", nil).
				WithSuggestion("Set it with: mate-tickets config set-url <url>")

	ErrReadIDFile = NewAppError(TypeInput, "Failed to read the ticket ID file", nil).
			WithSuggestion("Check that the file exists and is readable")

	ErrNoTicketIDs = NewAppError(TypeInput, "The ticket ID file has no usable IDs", nil).
			WithSuggestion("Add one 8-digit ticket ID per line")
)

// Runtime errors
var (
	ErrDecodeTicket = NewAppError(TypeAPI, "Failed to decode the ticket payload", nil)

	ErrWriteSheet = NewAppError(TypeOutput, "Failed to write the output spreadsheet", nil).
			WithSuggestion("Check that the output directory exists and you have write permissions")
)

// NewMalformedIDError reports an input line that is not an 8-digit ticket ID
func NewMalformedIDError(line int, value string) *AppError {
	return NewAppError(TypeInput, fmt.Sprintf("Line %d is not an 8-digit ticket ID: %q", line, value), nil).
		WithContext("line", line).
		WithSuggestion("Every non-blank line must match ^[0-9]{8}$")
}

// NewHTTPError reports a non-2xx response from the ticket service
func NewHTTPError(statusCode int, status, path string) *AppError {
	return NewAppError(TypeAPI, fmt.Sprintf("Unexpected response %s", status), nil).
		WithContext("status_code", statusCode).
		WithContext("path", path)
}
