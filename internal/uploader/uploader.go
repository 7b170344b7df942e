package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ad_tracker/internal/domain"
)

// Config holds media storage uploader configuration.
type Config struct {
	BaseURL      string
	APIKey       string
	ProbeTimeout time.Duration
	ImageTimeout time.Duration
	VideoTimeout time.Duration
}

// Client probes media origin URLs and asks the storage service to fetch
// and persist them. The storage side pulls the bytes itself, so uploads
// carry only the origin URL, never the payload.
type Client struct {
	probeClient  *http.Client
	uploadClient *http.Client
	baseURL      string
	apiKey       string
	imageTimeout time.Duration
	videoTimeout time.Duration
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		probeClient: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
		uploadClient: &http.Client{},
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		imageTimeout: cfg.ImageTimeout,
		videoTimeout: cfg.VideoTimeout,
		logger:       logger.With("component", "uploader"),
	}
}

// Probe reports whether a media URL is still reachable at its origin.
// Transport errors and timeouts read as "not accessible", never as fatal.
func (c *Client) Probe(ctx context.Context, mediaURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, mediaURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		c.logger.Debug("probe failed", "url", mediaURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

type uploadRequest struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload asks the storage service to fetch mediaURL and persist it, and
// returns the durable URL. Videos get a longer deadline than images.
func (c *Client) Upload(ctx context.Context, mediaURL string, kind domain.MediaKind) (string, error) {
	timeout := c.imageTimeout
	if kind == domain.MediaKindVideo {
		timeout = c.videoTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(uploadRequest{URL: mediaURL, Kind: string(kind)})
	if err != nil {
		return "", fmt.Errorf("marshal upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var uploadResp uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if uploadResp.SecureURL == "" {
		return "", fmt.Errorf("empty secure_url in upload response")
	}

	return uploadResp.SecureURL, nil
}
