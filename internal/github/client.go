// Package github reads directory listings and raw file content from the
// GitHub repository contents API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/logging"
)

// Entry is one item of a contents listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

const (
	TypeDir  = "dir"
	TypeFile = "file"
)

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == TypeDir
}

// NetworkError is returned for any non-success response or transport failure.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// Client issues read requests against the contents API. It never retries and
// sets no timeout of its own; callers cancel through the context.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client
	UserAgent  string
}

// New creates a new client.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = constants.AppName + "/" + constants.Version
	}
	return &Client{httpClient: hc, userAgent: ua}
}

// ContentsURL returns the listing address of a repository root, e.g.
// https://api.github.com/repos/owner/name/contents/.
func ContentsURL(apiBase, repository string) string {
	base := strings.TrimRight(apiBase, "/")
	repo := strings.Trim(repository, "/")
	return fmt.Sprintf("%s/repos/%s/contents/", base, repo)
}

// ListEntries returns the entries of the collection at address.
func (c *Client) ListEntries(ctx context.Context, address string) ([]Entry, error) {
	body, err := c.get(ctx, address, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var entries []Entry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, &NetworkError{URL: address, Err: fmt.Errorf("decode listing: %w", err)}
	}
	return entries, nil
}

// FetchContent returns the raw text at address.
func (c *Client) FetchContent(ctx context.Context, address string) (string, error) {
	body, err := c.get(ctx, address, "")
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &NetworkError{URL: address, Err: fmt.Errorf("read body: %w", err)}
	}
	return string(data), nil
}

func (c *Client) get(ctx context.Context, address, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, &NetworkError{URL: address, Err: err}
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn("request failed",
			logging.String("url", address),
			logging.Err(err))
		return nil, &NetworkError{URL: address, Err: err}
	}

	logging.Debug("request completed",
		logging.String("url", address),
		logging.Int("status", resp.StatusCode),
		logging.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		logging.Warn("non-success response",
			logging.String("url", address),
			logging.Int("status", resp.StatusCode))
		return nil, &NetworkError{URL: address, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
