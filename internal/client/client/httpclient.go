package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/codetracker/internal/codes"
	"github.com/dmitrijs2005/codetracker/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderName = "X-Request-ID"

	codesPath     = "/api/codes"
	updateNowPath = "/api/codes/update-now"
	healthPath    = "/api/health"

	// error bodies are only read for the message
	maxErrorBody = 4 << 10
)

type HTTPClient struct {
	baseURL     *url.URL
	hc          *http.Client
	accessToken string
	log         logging.Logger
	newID       func() string
}

// NewCodesClient returns a REST client for the codes API rooted at baseURL.
// An empty token sends no Authorization header.
func NewCodesClient(baseURL, token string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", baseURL)
	}

	return &HTTPClient{
		baseURL:     u,
		hc:          &http.Client{Timeout: timeout},
		accessToken: token,
		log:         log.With("mod", "codes.client"),
		newID:       uuid.NewString,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, healthPath, nil, nil, nil)
}

func (c *HTTPClient) AddCodes(ctx context.Context, items []codes.CodeInput) (*codes.AddResult, error) {
	if items == nil {
		items = []codes.CodeInput{}
	}
	var res codes.AddResult
	if err := c.do(ctx, http.MethodPost, codesPath, nil, items, &res); err != nil {
		return nil, err
	}
	if res.Invalid == nil {
		res.Invalid = []string{}
	}
	return &res, nil
}

func (c *HTTPClient) ListCodes(ctx context.Context, params codes.ListParams) (*codes.ListPage, error) {
	if err := codes.ValidateListParams(params); err != nil {
		return nil, err
	}

	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}

	var page codes.ListPage
	if err := c.do(ctx, http.MethodGet, codesPath, q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) DeleteCode(ctx context.Context, id string) (*codes.DeleteResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("code id is required")
	}
	res := codes.DeleteResult{Success: true}
	if err := c.do(ctx, http.MethodDelete, codesPath+"/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateNow(ctx context.Context) (*codes.UpdateNowResult, error) {
	res := codes.UpdateNowResult{Success: true}
	if err := c.do(ctx, http.MethodPost, updateNowPath, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetCodeDetails(ctx context.Context, id string) (*codes.CodeDetails, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("code id is required")
	}
	var res codes.CodeDetails
	if err := c.do(ctx, http.MethodGet, codesPath+"/"+url.PathEscape(id)+"/details", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// do sends one JSON request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	reqID := c.newID()
	req.Header.Set(RequestIDHeaderName, reqID)

	log := c.log.With("method", method, "path", path, "request_id", reqID)
	start := time.Now()

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", logging.Err(err), "duration", time.Since(start))
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return mapStatus(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// 204 and other bodiless 2xx replies leave out as the caller prepared it.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapTransportError reports every transport failure as ErrUnavailable except
// cancellation by the caller.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func mapStatus(code int, body []byte) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusRequestTimeout, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	return &APIError{StatusCode: code, Message: errorMessage(body)}
}

// errorMessage extracts {"error": ...} or {"message": ...} from a body,
// falling back to the trimmed raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
