package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/metrics"
)

// TokenProvider supplies the current session token. An empty string means
// unauthenticated; the header is simply omitted.
type TokenProvider interface {
	Token() string
}

// Client talks to the POS server. One instance is shared by every panel and
// the checkout flow; it is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// authTransport attaches the session token to every API request except the
// login and validate endpoints, which must work without one.
type authTransport struct {
	next   http.RoundTripper
	tokens TokenProvider
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	path := req.URL.Path

	exempt := strings.HasSuffix(path, "/auth/login") || strings.HasSuffix(path, "/auth/validate")

	if !exempt && t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	return t.next.RoundTrip(req)
}

func New(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {

	transport := otelhttp.NewTransport(http.DefaultTransport)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				next:   metrics.InstrumentTransport(transport),
				tokens: tokens,
			},
		},
		tokens: tokens,
	}
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into dest (when dest is non-nil). Non-2xx responses are mapped to
// AppError with the best available server message.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, dest any) error {

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.BadRequestError("Failed to encode request body").WithError(err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.BadRequestError("Failed to build request").WithError(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, dest)
}

func (c *Client) send(req *http.Request, dest any) error {

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)

		return apperrors.NetworkError("Could not reach the POS server").WithError(err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NetworkError("Failed to read server response").WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if dest == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return apperrors.ServerError("Invalid JSON in server response", resp.StatusCode).WithError(err)
	}

	return nil
}

// errorFromResponse prefers a server-provided message over a generic one.
func errorFromResponse(statusCode int, body []byte) error {

	message := serverMessage(body)

	switch statusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "Session is invalid or expired"
		}

		return apperrors.UnauthorizedError(message)
	case http.StatusForbidden:
		if message == "" {
			message = "Not allowed"
		}

		return apperrors.ForbiddenError(message)
	case http.StatusNotFound:
		if message == "" {
			message = "Resource not found"
		}

		return apperrors.NotFoundError(message)
	case http.StatusBadRequest:
		if message == "" {
			message = "The server rejected the request"
		}

		return apperrors.BadRequestError(message)
	default:
		if message == "" {
			message = fmt.Sprintf("Server returned status %d", statusCode)
		}

		return apperrors.ServerError(message, statusCode)
	}
}

func serverMessage(body []byte) string {

	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Message      string `json:"message"`
		ErrorMessage string `json:"errorMessage"`
		Error        string `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case envelope.ErrorMessage != "":
			return envelope.ErrorMessage
		case envelope.Error != "":
			return envelope.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}

	return text
}
