package tdx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	apperrors "github.com/Tomas-vilte/MateTickets/internal/errors"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/ratelimit"
	"github.com/Tomas-vilte/MateTickets/internal/logger"
)

// TokenEnvVar es la variable de entorno con el bearer token del servicio.
// Se lee una sola vez al arrancar; su ausencia es fatal.
const TokenEnvVar = "TDX_API_TOKEN"

// Client representa el cliente autenticado del servicio de tickets TDX.
// Cada request saliente consume un token del bucket antes de ejecutarse.
type Client struct {
	baseURL string
	token   string
	bucket  *ratelimit.TokenBucket
	client  httpclient.HTTPClient
}

// NewClient crea un cliente TDX. La ausencia del token o de la URL base
// es un error fatal de arranque.
func NewClient(baseURL, token string, bucket *ratelimit.TokenBucket, client httpclient.HTTPClient) (*Client, error) {
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}
	if baseURL == "" {
		return nil, apperrors.ErrMissingBaseURL
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		bucket:  bucket,
		client:  client,
	}, nil
}

// AuthenticatedGet hace un GET autenticado y retorna el cuerpo JSON crudo
func (c *Client) AuthenticatedGet(ctx context.Context, path string) (json.RawMessage, error) {
	return c.makeRequest(ctx, http.MethodGet, path, nil)
}

// AuthenticatedPost hace un POST autenticado con cuerpo JSON y retorna
// el cuerpo JSON crudo de la respuesta
func (c *Client) AuthenticatedPost(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}
	return c.makeRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
}

// FetchTicket obtiene el detalle de un ticket y lo normaliza a una fila
func (c *Client) FetchTicket(ctx context.Context, ticketID string) (*models.NormalizedRow, error) {
	body, err := c.AuthenticatedGet(ctx, fmt.Sprintf("/tickets/%s", ticketID))
	if err != nil {
		return nil, err
	}

	var raw models.RawTicket
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.ErrDecodeTicket.WithError(err).WithContext("ticket_id", ticketID)
	}

	logger.Debug(ctx, "ticket obtenido", "ticket_id", ticketID, "status", raw.StatusName)

	return Normalize(&raw), nil
}

// SearchTickets ejecuta una búsqueda y retorna el resultado sin procesar
func (c *Client) SearchTickets(ctx context.Context, query interface{}) (json.RawMessage, error) {
	return c.AuthenticatedPost(ctx, "/tickets/search", query)
}

func (c *Client) makeRequest(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	c.bucket.Consume()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewHTTPError(resp.StatusCode, resp.Status, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	return data, nil
}
