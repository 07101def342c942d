package camera

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptySnapshot is returned when the camera answers with no image bytes.
var ErrEmptySnapshot = errors.New("snapshot is empty")

// MaxSnapshotBytes bounds how much of a response body is read.
const MaxSnapshotBytes = 32 << 20

const defaultUserAgent = "printcam/0.1"

// Snapshot is a single captured frame.
type Snapshot struct {
	Data        []byte
	ContentType string
}

// Client downloads snapshots from a fixed URL.
type Client struct {
	url  string
	http *resty.Client
}

// NewClient builds a Client for snapshotURL.
func NewClient(snapshotURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimSpace(snapshotURL)
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot url %q: %w", snapshotURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("snapshot url %q is not absolute", snapshotURL)
	}
	return &Client{
		url: u.String(),
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", defaultUserAgent),
	}, nil
}

// URL returns the snapshot URL the client fetches.
func (c *Client) URL() string {
	return c.url
}

// FetchSnapshot downloads one frame.
func (c *Client) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	if c == nil {
		return Snapshot{}, fmt.Errorf("client is nil")
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "image/*").
		SetDoNotParseResponse(true).
		Get(c.url)
	if err != nil {
		return Snapshot{}, fmt.Errorf("execute request: %w", err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if !resp.IsSuccess() {
		return Snapshot{}, fmt.Errorf("snapshot returned status %d", resp.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxSnapshotBytes+1))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) > MaxSnapshotBytes {
		return Snapshot{}, fmt.Errorf("snapshot exceeds %d bytes", MaxSnapshotBytes)
	}
	if len(data) == 0 {
		return Snapshot{}, ErrEmptySnapshot
	}
	return Snapshot{
		Data:        data,
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}
