package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/saransh1220/framesync/internal/modules/design/domain"
)

const tokenHeader = "X-Figma-Token"

// Config holds the Figma REST API settings
type Config struct {
	BaseURL   string
	Token     string
	FileKey   string
	Scale     int
	BatchSize int // max ids per images call, 0 means one call
	Timeout   time.Duration
}

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma api returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Figma REST API. It holds no state besides its
// configuration and is safe for concurrent use.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a Figma client; a nil httpClient gets one with cfg.Timeout
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.FileKey == "" {
		return nil, fmt.Errorf("figma file key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.figma.com"
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{config: cfg, http: httpClient}, nil
}

// FetchFile retrieves the document tree of the configured file
func (c *Client) FetchFile(ctx context.Context) (*domain.File, error) {
	endpoint := fmt.Sprintf("%s/v1/files/%s", c.config.BaseURL, url.PathEscape(c.config.FileKey))

	var file domain.File
	if err := c.getJSON(ctx, endpoint, &file); err != nil {
		return nil, fmt.Errorf("failed to fetch file %s: %w", c.config.FileKey, err)
	}
	return &file, nil
}

type imagesResponse struct {
	Err    *string            `json:"err"`
	Images map[string]*string `json:"images"`
}

// FetchImageURLs requests render URLs for ids. Ids the API could not
// render are absent from the result.
func (c *Client) FetchImageURLs(ctx context.Context, ids []string) (map[string]string, error) {
	urls := make(map[string]string, len(ids))
	for _, batch := range chunk(ids, c.config.BatchSize) {
		q := url.Values{}
		q.Set("ids", strings.Join(batch, ","))
		q.Set("scale", strconv.Itoa(c.config.Scale))
		endpoint := fmt.Sprintf("%s/v1/images/%s?%s", c.config.BaseURL, url.PathEscape(c.config.FileKey), q.Encode())

		var resp imagesResponse
		if err := c.getJSON(ctx, endpoint, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch image urls: %w", err)
		}
		if resp.Err != nil && *resp.Err != "" {
			return nil, fmt.Errorf("figma render error: %s", *resp.Err)
		}
		if resp.Images == nil {
			return nil, domain.ErrImagesMissing
		}
		for id, u := range resp.Images {
			if u != nil && *u != "" {
				urls[id] = *u
			}
		}
	}
	return urls, nil
}

// DownloadImage fetches the bytes behind a render URL. The token is not
// sent since render URLs point at a separate storage host.
func (c *Client) DownloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(tokenHeader, c.config.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

// chunk splits ids into batches of at most size; size <= 0 yields one batch
func chunk(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	if size <= 0 || size >= len(ids) {
		return [][]string{ids}
	}
	var out [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		out = append(out, ids[start:end])
	}
	return out
}
