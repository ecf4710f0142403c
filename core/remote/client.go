package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrUnauthorized indicates the configured token lacks publish rights.
// It aborts the whole publish batch; there is no point retrying per file.
var ErrUnauthorized = errors.New("remote: unauthorized")

// ConflictError indicates the remote content changed since its SHA was read.
// It is scoped to a single file; the caller may re-fetch and retry that file.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("remote: conflicting update for %s", e.Path)
}

// FileResult reports the outcome of publishing a single file.
type FileResult struct {
	// Path is the repository path of the file.
	Path string `json:"path"`
	// Created is true when the file did not exist before.
	Created bool `json:"created"`
	// Err holds the per-file failure, if any.
	Err error `json:"-"`
	// Error is the string form of Err for JSON responses.
	Error string `json:"error,omitempty"`
}

// Client publishes file content to a remote repository through a
// GitHub-style contents API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a publisher client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// contentsResponse is the subset of the contents API response we need.
type contentsResponse struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

// putRequest is the body for a contents create/update call.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

func (c *Client) contentsURL(path string) string {
	base := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", base, c.cfg.Owner, c.cfg.Repo, path)
}

// GetSHA returns the current version marker for a file, or ok=false when the
// file does not exist on the remote.
func (c *Client) GetSHA(ctx context.Context, path string) (sha string, ok bool, err error) {
	url := c.contentsURL(path)
	if c.cfg.Branch != "" {
		url += "?ref=" + c.cfg.Branch
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("failed to read remote content %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var contents contentsResponse
		if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
			return "", false, fmt.Errorf("failed to decode remote content %s: %w", path, err)
		}
		return contents.SHA, true, nil
	case http.StatusNotFound:
		return "", false, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", false, ErrUnauthorized
	default:
		return "", false, fmt.Errorf("unexpected status %d reading %s", resp.StatusCode, path)
	}
}

// PutFile creates or updates a single file. When sha is non-empty the call is
// a compare-and-swap update; a stale sha yields a ConflictError.
func (c *Client) PutFile(ctx context.Context, path, content, message, sha string) error {
	body := putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  c.cfg.Branch,
		SHA:     sha,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to put remote content %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// The contents API reports a stale SHA as 409 (or 422 on some hosts).
		return &ConflictError{Path: path}
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d writing %s: %s", resp.StatusCode, path, string(data))
	}
}

// Publish pushes a set of files keyed by repository path. Each file is an
// independent remote call; per-file failures are reported in the results and
// do not stop sibling files. An authorization failure aborts the batch.
// Paths are processed in sorted order so repeated runs behave identically.
func (c *Client) Publish(ctx context.Context, files map[string]string, message string) ([]FileResult, error) {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		result := FileResult{Path: path}

		sha, exists, err := c.GetSHA(ctx, path)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return results, err
			}
			result.Err = err
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.Created = !exists

		if err := c.PutFile(ctx, path, files[path], message, sha); err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return results, err
			}
			result.Err = err
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	return results, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
}
