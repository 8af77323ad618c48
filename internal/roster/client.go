package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source loads the full character collection in one shot.
// This interface is implemented by *Client and *FileSource.
type Source interface {
	FetchCharacters(ctx context.Context) ([]Character, error)
}

// Ensure both sources implement Source at compile time.
var (
	_ Source = (*Client)(nil)
	_ Source = (*FileSource)(nil)
)

// Client talks to a json-server style HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL         = "http://127.0.0.1:3001"
	defaultUserAgent      = "roster/0.1"
	defaultRequestTimeout = 5 * time.Second
	charactersPath        = "/characters"
)

// NewClient builds a Client for the given base URL. A bare host:port is
// treated as http. A zero timeout uses the default.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API base.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchCharacters retrieves the whole collection from /characters.
func (c *Client) FetchCharacters(ctx context.Context) ([]Character, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Character
	if err := c.do(ctx, http.MethodGet, charactersPath, &payload); err != nil {
		return nil, err
	}
	if err := Validate(payload); err != nil {
		return nil, fmt.Errorf("invalid collection: %w", err)
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: strings.TrimSuffix(c.baseURL.Path, "/") + path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// FileSource reads the collection from a db.json fixture on disk.
type FileSource struct {
	Path string
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchCharacters reads and decodes the fixture. Both the json-server layout
// ({"characters": [...]}) and a bare array are accepted.
func (f *FileSource) FetchCharacters(ctx context.Context) ([]Character, error) {
	if f == nil || strings.TrimSpace(f.Path) == "" {
		return nil, fmt.Errorf("data file not set")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	chars, err := DecodeCharacters(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(chars); err != nil {
		return nil, fmt.Errorf("invalid collection: %w", err)
	}
	return chars, nil
}

// DecodeCharacters parses either fixture layout.
func DecodeCharacters(data []byte) ([]Character, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var chars []Character
		if err := json.Unmarshal(trimmed, &chars); err != nil {
			return nil, fmt.Errorf("decode characters: %w", err)
		}
		return chars, nil
	}
	var db Database
	if err := json.Unmarshal(trimmed, &db); err != nil {
		return nil, fmt.Errorf("decode database: %w", err)
	}
	return db.Characters, nil
}
