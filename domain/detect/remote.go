package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/samber/lo"
)

// RemoteDetector talks to a YOLO inference sidecar over HTTP. The frame is
// posted as a PNG form part to /predict; the reply is a JSON list of boxes.
// The model itself lives in the sidecar and is a black box here.
type RemoteDetector struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type predictBox struct {
	ClassID    int     `json:"class_id"`
	Confidence float64 `json:"confidence"`
	Box        [4]int  `json:"box"`
}

type predictResponse struct {
	Detections []predictBox `json:"detections"`
}

// NewRemoteDetector probes the sidecar's health endpoint once; an
// unreachable backend is a construction-time precondition failure and the
// caller decides whether to abort.
func NewRemoteDetector(baseURL string, logger *slog.Logger) (*RemoteDetector, error) {
	d := &RemoteDetector{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
	resp, err := d.client.Get(baseURL + "/health")
	if err != nil {
		return nil, fmt.Errorf("detect: inference backend unreachable at %s: %w", baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detect: inference backend unhealthy: %s", resp.Status)
	}
	return d, nil
}

// Infer posts the frame and the confidence cutoff, returning the candidate
// boxes. Errors are per-cycle: the caller logs and skips the cycle.
func (d *RemoteDetector) Infer(img *image.RGBA, confidenceThreshold float64) ([]RawDetection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="frame.png"`)
	h.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("detect: create form part: %w", err)
	}
	if err := png.Encode(part, img); err != nil {
		return nil, fmt.Errorf("detect: encode frame: %w", err)
	}
	if err := writer.WriteField("conf", fmt.Sprintf("%.3f", confidenceThreshold)); err != nil {
		return nil, fmt.Errorf("detect: write conf field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("detect: close writer: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, d.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("detect: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect: predict request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("detect: bad status %s: %s", resp.Status, msg)
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("detect: decode response: %w", err)
	}
	return lo.Map(pr.Detections, func(b predictBox, _ int) RawDetection {
		return RawDetection{
			ClassID:    b.ClassID,
			Confidence: b.Confidence,
			Box:        image.Rect(b.Box[0], b.Box[1], b.Box[2], b.Box[3]),
		}
	}), nil
}
