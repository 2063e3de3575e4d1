package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
)

const (
	classifyPath = "/api/classificar"
	uploadPath   = "/api/upload"
	healthPath   = "/api/health"
)

// classifyRequest is the wire format accepted by the classification endpoint
type classifyRequest struct {
	Texto string `json:"texto"`
}

// classifyResponse is the wire format returned by both the classification
// and upload endpoints
type classifyResponse struct {
	Categoria          string  `json:"categoria"`
	Confianca          float64 `json:"confianca"`
	RespostaSugerida   string  `json:"resposta_sugerida"`
	TextoProcessado    string  `json:"texto_processado"`
	TempoProcessamento string  `json:"tempo_processamento"`
	ModeloUtilizado    string  `json:"modelo_utilizado"`
}

// healthResponse is the wire format returned by the health endpoint
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ClassifierClient is an HTTP client for the remote classification service.
// A zero timeout means no client-side deadline; failures then surface only
// through the transport.
type ClassifierClient struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// NewClassifierClient creates a new classification service client
func NewClassifierClient(baseURL string, timeout time.Duration) *ClassifierClient {
	return &ClassifierClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBaseURL replaces the service base URL. Used when the stored settings
// carry a custom endpoint.
func (c *ClassifierClient) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = baseURL
}

// BaseURL returns the current service base URL
func (c *ClassifierClient) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Classify submits a single text for classification
func (c *ClassifierClient) Classify(ctx context.Context, text string) (*entity.ClassificationResult, error) {
	body, err := json.Marshal(classifyRequest{Texto: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+classifyPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Upload forwards a file to the remote upload endpoint as a multipart form
// with a single "file" field and returns the classification produced
// server-side.
func (c *ClassifierClient) Upload(ctx context.Context, filename string, content io.Reader) (*entity.ClassificationResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+uploadPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// Health probes the classification service health endpoint
func (c *ClassifierClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+healthPath, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("classification service unhealthy: status %d", resp.StatusCode)
	}

	var status healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	return nil
}

func (c *ClassifierClient) do(req *http.Request) (*entity.ClassificationResult, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var wire classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	category, ok := entity.CategoryFromString(wire.Categoria)
	if !ok {
		return nil, fmt.Errorf("classification service returned unknown category %q", wire.Categoria)
	}

	return &entity.ClassificationResult{
		Category:       category,
		Confidence:     wire.Confianca,
		SuggestedReply: wire.RespostaSugerida,
		ProcessedText:  wire.TextoProcessado,
		ModelUsed:      wire.ModeloUtilizado,
		ServerTime:     wire.TempoProcessamento,
	}, nil
}
