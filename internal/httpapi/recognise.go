// Package httpapi holds the two raw HTTP handlers that do not fit the goa
// DSL surface (a non-JSON enrollment response shape and a SOAP/XML body):
// POST /recognise and POST /onvif_notifications. Both are mounted directly
// on the same mux as the generated goa handlers.
package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"time"

	"edgecam/internal/analyzer"
	"edgecam/internal/roster"
)

// detSizeSchedule is the retry-lowering-det-size schedule named in the
// external interfaces section: try the service default first, then a
// descending ladder of explicit input sizes.
var detSizeSchedule = []int{0, 640, 576, 512, 448, 384, 320, 256}

// RecogniseHandler implements POST /recognise.
type RecogniseHandler struct {
	Analyzer     *analyzer.HTTPFaceAnalyzer
	RosterCache  *roster.Cache
	HTTPClient   *http.Client
	RefreshDelay time.Duration
}

// NewRecogniseHandler constructs a RecogniseHandler with a 10s default
// roster-refresh delay, long enough for the control plane to have stored
// the enrollment before the refresh reads it back.
func NewRecogniseHandler(a *analyzer.HTTPFaceAnalyzer, rosterCache *roster.Cache) *RecogniseHandler {
	return &RecogniseHandler{
		Analyzer:     a,
		RosterCache:  rosterCache,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
		RefreshDelay: 10 * time.Second,
	}
}

// ServeHTTP implements the handler. An empty body only schedules a forced
// roster refresh; a body describing a reference face is enrolled: the image
// is downloaded, detected with a descending det_size retry ladder, and the
// first face's embedding plus a base64 JPEG crop are returned alongside the
// original JSON fields.
func (h *RecogniseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		time.AfterFunc(h.RefreshDelay, func() {
			if _, err := h.RosterCache.Refresh(); err != nil {
				log.Printf("[httpapi] scheduled roster refresh failed: %v", err)
			}
		})
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"roster refresh scheduled"}`))
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	imgURL, _ := payload["faceImgUrl"].(string)
	if imgURL == "" {
		http.Error(w, "missing faceImgUrl", http.StatusBadRequest)
		return
	}

	imgData, err := h.downloadImage(r.Context(), imgURL)
	if err != nil {
		log.Printf("[httpapi] download enrollment image failed: %v", err)
		http.Error(w, "download image failed", http.StatusBadGateway)
		return
	}

	face, crop, err := h.detectFirstFace(r.Context(), imgData)
	if err != nil {
		log.Printf("[httpapi] enrollment detection failed: %v", err)
		http.Error(w, "no face detected", http.StatusUnprocessableEntity)
		return
	}

	payload["faceEmbedding"] = face.Embedding
	payload["faceImgBase64"] = base64.StdEncoding.EncodeToString(crop)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[httpapi] encode enrollment response failed: %v", err)
	}
}

func (h *RecogniseHandler) downloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := h.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}

type faceWithBBox struct {
	BBox      [4]int
	Embedding []float32
}

func (h *RecogniseHandler) detectFirstFace(ctx context.Context, imgData []byte) (faceWithBBox, []byte, error) {
	for _, detSize := range detSizeSchedule {
		faces, err := h.Analyzer.DetectAtSize(ctx, imgData, detSize)
		if err != nil {
			continue
		}
		if len(faces) == 0 {
			continue
		}
		crop, err := cropFace(imgData, faces[0].BBox)
		if err != nil {
			return faceWithBBox{}, nil, fmt.Errorf("crop face: %w", err)
		}
		return faceWithBBox{BBox: faces[0].BBox, Embedding: faces[0].Embedding}, crop, nil
	}
	return faceWithBBox{}, nil, fmt.Errorf("no face detected across det_size schedule")
}

func cropFace(raw []byte, bbox [4]int) ([]byte, error) {
	src, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode reference image: %w", err)
	}
	rect := image.Rect(bbox[0], bbox[1], bbox[2], bbox[3]).Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("empty crop rectangle")
	}

	var out image.Image
	if cropped, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		out = cropped.SubImage(rect)
	} else {
		out = src
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	return buf.Bytes(), nil
}
