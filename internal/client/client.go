package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hance08/caixa/internal/model"
)

const (
	pathBulkCreate = "/transacoes/lote"
	pathCategories = "/categorias"
	pathTags       = "/tags"

	genericFailure = "the server could not process the request"
)

// APIError is a failure reported by the backend. Message is the server's
// own text when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrUnauthorized is wrapped by APIError responses with status 401.
var ErrUnauthorized = errors.New("not authorized, check api.token")

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	HTTP    *http.Client
	Logger  *log.Logger
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *log.Logger
}

func New(opts Options) *Client {
	hc := opts.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    hc,
		log:     logger,
	}
}

// BulkResult is the acknowledgement of a batch create.
type BulkResult struct {
	Message string   `json:"mensagem"`
	IDs     []string `json:"ids"`
}

type bulkRequest struct {
	Transacoes []model.Transaction `json:"transacoes"`
}

// BulkCreate sends the whole batch in a single request.
func (c *Client) BulkCreate(ctx context.Context, txs []model.Transaction) (BulkResult, error) {
	var res BulkResult
	if err := c.do(ctx, http.MethodPost, pathBulkCreate, bulkRequest{Transacoes: txs}, &res); err != nil {
		return BulkResult{}, err
	}
	c.log.Info("batch created", "count", len(txs), "ids", len(res.IDs))
	return res, nil
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := c.do(ctx, http.MethodGet, pathCategories, nil, &cats); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return cats, nil
}

func (c *Client) Tags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := c.do(ctx, http.MethodGet, pathTags, nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return tags, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request done", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var body struct {
		Erro string `json:"erro"`
	}
	msg := genericFailure
	if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Erro) != "" {
		msg = body.Erro
	}
	return &APIError{Status: status, Message: msg}
}
