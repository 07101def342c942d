package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrEmptyPayload is returned when there is neither an image nor a status.
	ErrEmptyPayload = errors.New("nothing to upload")
	// ErrUploadRejected is returned alongside a Result for non-2xx answers.
	ErrUploadRejected = errors.New("upload rejected")
)

// Multipart layout expected by the status endpoint.
const (
	ImageField       = "image"
	ImageFileName    = "snapshot.jpg"
	ImageContentType = "image/jpg"
	StatusField      = "status"
)

const defaultUserAgent = "printcam/0.1"

// Payload is what one pass uploads. Either part may be absent.
type Payload struct {
	Image     []byte
	Status    string
	HasStatus bool
}

// Empty reports whether the payload carries nothing.
func (p Payload) Empty() bool {
	return len(p.Image) == 0 && !p.HasStatus
}

// Result describes the endpoint's answer. Body holds the decoded JSON
// object when the response was one; RawBody always holds the text.
type Result struct {
	StatusCode int
	Body       map[string]any
	RawBody    string
}

// Client uploads to one endpoint with fixed credentials.
type Client struct {
	endpoint string
	user     string
	http     *resty.Client
}

// NewClient builds a Client for endpoint.
func NewClient(endpoint, user, password string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not absolute", endpoint)
	}
	return &Client{
		endpoint: u.String(),
		user:     user,
		http: resty.New().
			SetTimeout(timeout).
			SetBasicAuth(user, password).
			SetDisableWarn(true).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", defaultUserAgent),
	}, nil
}

// SetLogger routes resty's own diagnostics to l.
func (c *Client) SetLogger(l resty.Logger) {
	c.http.SetLogger(l)
}

// Endpoint returns the upload URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// User returns the basic auth user name.
func (c *Client) User() string {
	return c.user
}

// Patch uploads p. Transport failures return an error and a zero Result;
// non-2xx answers return the Result together with ErrUploadRejected.
func (c *Client) Patch(ctx context.Context, p Payload) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	if p.Empty() {
		return Result{}, ErrEmptyPayload
	}

	req := c.http.R().SetContext(ctx)
	if len(p.Image) > 0 {
		req.SetMultipartField(ImageField, ImageFileName, ImageContentType, bytes.NewReader(p.Image))
	}
	if p.HasStatus {
		req.SetMultipartFormData(map[string]string{StatusField: p.Status})
	}

	resp, err := req.Patch(c.endpoint)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}

	result := Result{
		StatusCode: resp.StatusCode(),
		RawBody:    string(resp.Body()),
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		result.Body = body
	}

	if !resp.IsSuccess() {
		return result, fmt.Errorf("endpoint returned status %d: %w", result.StatusCode, ErrUploadRejected)
	}
	return result, nil
}
