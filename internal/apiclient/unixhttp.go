//go:build unix

// Package apiclient is the thin JSON client CLI commands use to query a
// running jetscout daemon over its unix socket.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jetscout/jetscout/internal/limits"
	"github.com/jetscout/jetscout/internal/paths"
)

type Client struct {
	http       *http.Client
	baseURL    string
	socketPath string
}

func New() *Client {
	socketPath := paths.SocketPath()
	tr := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		},
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		http:       &http.Client{Transport: tr}, // no Timeout; use ctx per-request
		baseURL:    "http://unix",
		socketPath: socketPath,
	}
}

type APIError struct {
	StatusCode int
	Body       []byte
	Message    string // parsed from {"error": "..."} if present
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, string(e.Body))
}

func decodeAPIError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, limits.ErrorBody))
	var m struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(b, &m)
	return &APIError{StatusCode: resp.StatusCode, Body: b, Message: m.Error}
}

// GetJSON performs a GET against the daemon and decodes the JSON response
// into out. Discovery is read-only, so GET is the only verb the API has.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return c.wrapConnErr(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decodeAPIError(resp)
	}
	return json.NewDecoder(io.LimitReader(resp.Body, limits.JSON)).Decode(out)
}

// Friendly hint when the daemon isn't running / socket missing.
func (c *Client) wrapConnErr(err error) error {
	// best-effort heuristics without importing x/sys
	if strings.Contains(err.Error(), "connect: no such file or directory") ||
		strings.Contains(err.Error(), "unknown network unix") ||
		strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("cannot connect to jetscout daemon at %s; is it running? try `jetscout daemon start` (%w)", c.socketPath, err)
	}
	return err
}
