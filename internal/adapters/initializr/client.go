// Package initializr implements the catalog and archive ports against the Spring Initializr HTTP API.
package initializr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// maxMetadataBytes caps the metadata document.
	maxMetadataBytes = 10 << 20
	// maxErrorBodyBytes caps the response body attached to generation errors.
	maxErrorBodyBytes = 4 << 10

	unreadableBody = "<unreadable response body>"
)

// Client talks to a single Initializr service.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var (
	_ ports.CatalogClient     = (*Client)(nil)
	_ ports.ArchiveDownloader = (*Client)(nil)
)

// NewClient creates a Client for the service described by settings.
func NewClient(settings domain.Settings) *Client {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	return newClientWithHTTP(settings.ServiceURL, settings.UserAgent, &http.Client{
		Timeout: timeout,
	})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL, userAgent string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultServiceURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: client,
	}
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch retrieves the metadata document from the service root and decodes it.
func (c *Client) Fetch(ctx context.Context) (*domain.Catalog, error) {
	resp, err := c.get(ctx, c.baseURL+"/", "application/json")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccess(resp.StatusCode) {
		statusErr := zerr.Wrap(domain.ErrServiceStatus, "metadata request rejected")
		statusErr = zerr.With(statusErr, "status", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", c.baseURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataBytes+1))
	if err != nil {
		return nil, domain.WrapCause(err, domain.ErrTransport)
	}
	if len(body) > maxMetadataBytes {
		return nil, zerr.With(zerr.Wrap(domain.ErrDecode, "metadata document too large"), "limit", maxMetadataBytes)
	}

	var metadata metadataResponse
	if err := json.Unmarshal(body, &metadata); err != nil {
		return nil, domain.WrapCause(err, domain.ErrDecode)
	}

	return metadata.toCatalog()
}

func (c *Client) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(domain.WrapCause(err, domain.ErrTransport), "url", url)
	}
	req.Header.Set("Accept", accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(domain.WrapCause(err, domain.ErrTransport), "url", url)
	}
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
