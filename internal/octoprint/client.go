package octoprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrPrinterNotOperational is returned when OctoPrint answers 409, which it
// does whenever the printer is disconnected or otherwise not operational.
var ErrPrinterNotOperational = errors.New("printer is not operational")

// StatusFetcher is implemented by *Client and can be faked in tests.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (Status, error)
}

var _ StatusFetcher = (*Client)(nil)

// Client talks to the OctoPrint REST API.
type Client struct {
	http *resty.Client
}

const defaultUserAgent = "printcam/0.1"

// NewClient builds a Client rooted at baseURL. apiKey may be empty for
// instances that allow anonymous read access.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)
	if key := strings.TrimSpace(apiKey); key != "" {
		rc.SetHeader("X-Api-Key", key)
	}
	return &Client{http: rc}, nil
}

// FetchPrinter retrieves the printer state without temperature and SD data.
func (c *Client) FetchPrinter(ctx context.Context) (*PrinterResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	query := url.Values{}
	query.Set("exclude", "temperature,sd")
	var payload PrinterResponse
	if err := c.get(ctx, "/api/printer", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchJob retrieves the current job and its progress.
func (c *Client) FetchJob(ctx context.Context) (*JobResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload JobResponse
	if err := c.get(ctx, "/api/job", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchStatus combines printer and job state. A 409 from the printer
// endpoint yields the idle status rather than an error.
func (c *Client) FetchStatus(ctx context.Context) (Status, error) {
	printer, err := c.FetchPrinter(ctx)
	if err != nil {
		if errors.Is(err, ErrPrinterNotOperational) {
			return Status{Idle: true}, nil
		}
		return Status{}, err
	}

	status := Status{
		StateText: printer.State.Text,
		Printing:  printer.State.Flags.Printing,
	}
	if !status.Printing {
		return status, nil
	}

	job, err := c.FetchJob(ctx)
	if err != nil {
		// The printer can disconnect between the two requests.
		if errors.Is(err, ErrPrinterNotOperational) {
			return Status{Idle: true}, nil
		}
		return Status{}, err
	}
	status.FileName = job.Job.File.DisplayName()
	status.Completion = job.Progress.Completion
	status.PrintTime = job.Progress.PrintTime
	status.PrintTimeLeft = job.Progress.PrintTimeLeft
	return status, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode() == http.StatusConflict {
		return fmt.Errorf("api %s: %w", path, ErrPrinterNotOperational)
	}
	if !resp.IsSuccess() || resp.StatusCode() == http.StatusNoContent {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL keeps any path prefix so instances behind a reverse proxy
// subpath work, but drops query and fragment.
func parseBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("octoprint url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse octoprint url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
