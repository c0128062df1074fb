package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
)

// APIError is a backend non-success response. Its message renders as
// "API <path> <status>: <body>" so that callers holding only an error string
// can still recover the status.
type APIError struct {
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %s %d: %s", e.Path, e.Status, e.Body)
}

var errStatusPattern = regexp.MustCompile(`API .* (\d{3}):`)

// StatusFromError extracts the backend status out of a relayed error message,
// defaulting to 500 when the message does not carry one.
func StatusFromError(err error) int {
	match := errStatusPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return http.StatusInternalServerError
	}
	status, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return http.StatusInternalServerError
	}
	return status
}

// Client calls the backend API service with the shared secret attached.
type Client struct {
	Base string
	Key  string
	HTTP *http.Client
}

// Do forwards a request and returns the raw response body. Non-2xx responses
// come back as *APIError carrying the backend's status and body text.
func (c *Client) Do(ctx context.Context, method, path, rawQuery string, body []byte) ([]byte, error) {
	url := c.Base + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.Key)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Path: path, Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
