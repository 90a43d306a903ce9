// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/aurum/internal/httputil"
	"github.com/pdiddy/aurum/pkg/types"
)

// defaultBaseURL is the production AUR server.
const defaultBaseURL = "https://aur.archlinux.org"

// Client issues RPC requests against an AUR-compatible server.
type Client struct {
	baseURL    string
	http       *http.Client
	userAgent  string
	maxRetries int
}

// NewClient builds a Client from configuration. Zero-value fields fall
// back to defaults (production base URL, 10 s timeout).
func NewClient(cfg types.RPCConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}
}

// Search issues a single search query for one term and returns the
// decoded records. Zero matches returns an empty slice and nil error.
func (c *Client) Search(ctx context.Context, by SearchBy, term string) ([]types.Package, error) {
	return c.get(ctx, SearchRequest{By: by, Term: term}.Path())
}

// Info looks up one or more packages by exact name in a single request.
func (c *Client) Info(ctx context.Context, pkgs []string) ([]types.Package, error) {
	return c.get(ctx, InfoRequest{Packages: pkgs}.Path())
}

func (c *Client) get(ctx context.Context, path string) ([]types.Package, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("AUR request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AUR returned HTTP %d", resp.StatusCode)
	}

	return interpret(resp.Body)
}
