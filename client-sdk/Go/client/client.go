package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// chaintable Go SDK
//
// A thin wrapper around the chaintable HTTP API.
//
// All methods return *APIError when the server answers with a non-successful
// status code.
//
// Example usage:
//  client := NewClient("http://localhost:8080")
//  err := client.Insert("k", "v", 0, false)
//  ...

// Client is an HTTP client for a chaintable server.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// APIError represents an error returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chaintable: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Pair is a pair addressed by its position among equal keys.
type Pair struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Pos     uint   `json:"pos"`
	Reverse bool   `json:"reverse"`
}

// Stats mirrors the server's table statistics.
type Stats struct {
	Slots        int `json:"slots"`
	Pairs        int `json:"pairs"`
	Bytes        int `json:"bytes"`
	EmptySlots   int `json:"empty_slots"`
	LongestChain int `json:"longest_chain"`
}

// NewClient creates a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// request sends an HTTP request and returns the response body.
func (c *Client) request(method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	return respBody, nil
}

func pairPath(key string, pos uint, reverse bool) string {
	q := url.Values{}
	q.Set("pos", strconv.FormatUint(uint64(pos), 10))
	q.Set("reverse", strconv.FormatBool(reverse))
	return "/v1/pairs/" + url.PathEscape(key) + "?" + q.Encode()
}

// HealthCheck checks if the server is healthy. Returns true if healthy.
func (c *Client) HealthCheck() (bool, error) {
	resp, err := c.request(http.MethodGet, "/", nil)
	if err != nil {
		return false, err
	}
	var result map[string]any
	if err := json.Unmarshal(resp, &result); err != nil {
		return false, err
	}
	return result["status"] == "ok", nil
}

// Get returns the value of the pos-th pair for key, counted from the tail
// when reverse is set.
func (c *Client) Get(key string, pos uint, reverse bool) (string, error) {
	resp, err := c.request(http.MethodGet, pairPath(key, pos, reverse), nil)
	if err != nil {
		return "", err
	}
	var p Pair
	if err := json.Unmarshal(resp, &p); err != nil {
		return "", err
	}
	return p.Value, nil
}

// Insert adds a pair at pos counted from the chosen end.
func (c *Client) Insert(key, value string, pos uint, reverse bool) error {
	_, err := c.request(http.MethodPost, "/v1/pairs", map[string]any{
		"key":     key,
		"value":   value,
		"pos":     pos,
		"reverse": reverse,
	})
	return err
}

// InsertUnique adds a pair unless key is already present.
func (c *Client) InsertUnique(key, value string) error {
	_, err := c.request(http.MethodPost, "/v1/pairs", map[string]any{
		"key":    key,
		"value":  value,
		"unique": true,
	})
	return err
}

// Remove deletes the pos-th pair for key.
func (c *Client) Remove(key string, pos uint, reverse bool) error {
	_, err := c.request(http.MethodDelete, pairPath(key, pos, reverse), nil)
	return err
}

// Reset empties the table.
func (c *Client) Reset() error {
	_, err := c.request(http.MethodPost, "/v1/reset", nil)
	return err
}

// Stats returns table statistics.
func (c *Client) Stats() (*Stats, error) {
	resp, err := c.request(http.MethodGet, "/v1/stats", nil)
	if err != nil {
		return nil, err
	}
	var s Stats
	if err := json.Unmarshal(resp, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
