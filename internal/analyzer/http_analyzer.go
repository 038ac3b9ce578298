// Package analyzer provides the one concrete FaceAnalyzer implementation
// shipped with the agent: an HTTP client that posts a JPEG frame as
// multipart form data to an external embedding service. The client never
// performs matching itself; it returns bare (bbox, embedding) pairs and
// leaves roster comparison to the Detector, which keeps the similarity
// threshold swappable per backend and independent of which model produced
// the vector.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"edgecam/internal/detect"
)

// Config configures the HTTP face analyzer.
type Config struct {
	Endpoint string
	Backend  string // "INSIGHTFACE" | "HAILO"
	Timeout  time.Duration
}

// HTTPFaceAnalyzer implements detect.FaceAnalyzer over HTTP.
type HTTPFaceAnalyzer struct {
	cfg    Config
	client *http.Client
}

// New constructs an HTTPFaceAnalyzer.
func New(cfg Config) *HTTPFaceAnalyzer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &HTTPFaceAnalyzer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Backend implements detect.FaceAnalyzer.
func (a *HTTPFaceAnalyzer) Backend() string {
	return a.cfg.Backend
}

type detectResponseFace struct {
	BBox      [4]int    `json:"bbox"`
	Embedding []float32 `json:"embedding"`
}

type detectResponse struct {
	Faces []detectResponseFace `json:"faces"`
}

// Detect implements detect.FaceAnalyzer by POSTing the JPEG as multipart
// form field "image" to {endpoint}/detect.
func (a *HTTPFaceAnalyzer) Detect(ctx context.Context, image []byte) ([]detect.Face, error) {
	return a.DetectAtSize(ctx, image, 0)
}

// DetectAtSize is Detect with an explicit detector input size hint (0 means
// let the service pick its default). The enrollment path in the HTTP ingress
// uses this directly to walk the retry-lowering-det-size schedule named in
// the external interfaces section.
func (a *HTTPFaceAnalyzer) DetectAtSize(ctx context.Context, image []byte, detSize int) ([]detect.Face, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "frame.jpg")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}
	if detSize > 0 {
		if err := writer.WriteField("det_size", fmt.Sprintf("%d", detSize)); err != nil {
			return nil, fmt.Errorf("write det_size field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint+"/detect", &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}

	out := make([]detect.Face, 0, len(parsed.Faces))
	for _, f := range parsed.Faces {
		out = append(out, detect.Face{BBox: f.BBox, Embedding: f.Embedding})
	}
	return out, nil
}

// CheckHealth probes the embedding service (GET {endpoint}/health, 200
// means healthy) so operators can surface analyzer availability alongside
// camera availability.
func (a *HTTPFaceAnalyzer) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.Endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analyzer unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

var _ detect.FaceAnalyzer = (*HTTPFaceAnalyzer)(nil)
