package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/five82/printcam/internal/camera"
	"github.com/five82/printcam/internal/config"
	"github.com/five82/printcam/internal/logging"
	"github.com/five82/printcam/internal/octoprint"
	"github.com/five82/printcam/internal/preview"
	"github.com/five82/printcam/internal/upload"
)

// Exit codes returned by Run.
const (
	ExitOK           = 0
	ExitNoData       = 1 // both fetches failed, or printcam could not start
	ExitUploadFailed = 2
)

// Options configure a single pass.
type Options struct {
	ConfigPath string
	DryRun     bool
	LogLevel   string // overrides the configured level when set
	LogFormat  string // overrides the configured format when set
	Out        io.Writer
}

// pass holds the clients for one run. status is nil when OctoPrint is not
// configured.
type pass struct {
	camera   *camera.Client
	status   octoprint.StatusFetcher
	uploader *upload.Client
	log      *logrus.Entry
}

// Run loads configuration, fetches the snapshot and printer status, uploads
// them and returns the process exit code.
func Run(ctx context.Context, opts Options) int {
	log := logging.New("app")
	if err := logging.Configure(opts.LogLevel, opts.LogFormat); err != nil {
		log.WithError(err).Error("Invalid logging flags")
		return ExitNoData
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return ExitNoData
	}
	level := firstNonEmpty(opts.LogLevel, cfg.LogLevel)
	format := firstNonEmpty(opts.LogFormat, cfg.LogFormat)
	if err := logging.Configure(level, format); err != nil {
		log.WithError(err).Error("Invalid logging configuration")
		return ExitNoData
	}

	p, err := newPass(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to initialise clients")
		return ExitNoData
	}

	payload := p.collect(ctx)
	if payload.Empty() {
		p.log.Error("Snapshot and printer status both unavailable, nothing to upload")
		return ExitNoData
	}

	if opts.DryRun {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, preview.Render(preview.Preview{
			Endpoint:  p.uploader.Endpoint(),
			User:      p.uploader.User(),
			Image:     payload.Image,
			Status:    payload.Status,
			HasStatus: payload.HasStatus,
		}))
		return ExitOK
	}

	return p.upload(ctx, payload)
}

func newPass(cfg config.Config) (*pass, error) {
	cam, err := camera.NewClient(cfg.SnapshotURL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("init camera client: %w", err)
	}
	uploader, err := upload.NewClient(cfg.PrinterEndpoint, cfg.User, cfg.Password, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("init upload client: %w", err)
	}
	p := &pass{
		camera:   cam,
		uploader: uploader,
		log:      logging.New("printcam"),
	}
	uploader.SetLogger(logging.New("upload"))

	if cfg.StatusEnabled() {
		printer, err := octoprint.NewClient(cfg.OctoPrintURL, cfg.OctoPrintAPIKey, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("init octoprint client: %w", err)
		}
		p.status = printer
	}
	return p, nil
}

// collect runs both fetches. A failed fetch leaves its part of the payload
// empty; it never aborts the pass.
func (p *pass) collect(ctx context.Context) upload.Payload {
	var payload upload.Payload

	p.log.WithField("url", p.camera.URL()).Info("Fetching snapshot")
	snap, err := p.camera.FetchSnapshot(ctx)
	if err != nil {
		p.log.WithError(err).Warn("Snapshot unavailable, uploading without image")
	} else {
		payload.Image = snap.Data
		p.log.WithFields(logrus.Fields{
			"bytes":        len(snap.Data),
			"content_type": snap.ContentType,
		}).Debug("Fetched snapshot")
	}

	if p.status == nil {
		return payload
	}
	p.log.Info("Fetching printer status")
	status, err := p.status.FetchStatus(ctx)
	if err != nil {
		p.log.WithError(err).Warn("Printer status unavailable, uploading without status")
		return payload
	}
	payload.Status = status.String()
	payload.HasStatus = true
	p.log.WithFields(logrus.Fields{
		"status": payload.Status,
		"idle":   status.Idle,
	}).Info("Fetched printer status")
	return payload
}

func (p *pass) upload(ctx context.Context, payload upload.Payload) int {
	p.log.WithFields(logrus.Fields{
		"url":      p.uploader.Endpoint(),
		"username": p.uploader.User(),
		"bytes":    len(payload.Image),
		"size":     humanize.Bytes(uint64(len(payload.Image))),
		"status":   payload.Status,
	}).Info("PATCHing server image")

	result, err := p.uploader.Patch(ctx, payload)
	if err != nil {
		entry := p.log.WithError(err)
		if errors.Is(err, upload.ErrUploadRejected) {
			entry = entry.WithFields(logrus.Fields{
				"status_code": result.StatusCode,
				"content":     content(result),
			})
		}
		entry.Error("Failed to upload snapshot")
		return ExitUploadFailed
	}

	p.log.WithFields(logrus.Fields{
		"status_code": result.StatusCode,
		"content":     content(result),
	}).Info("Successfully uploaded snapshot")
	return ExitOK
}

func content(r upload.Result) any {
	if r.Body != nil {
		return r.Body
	}
	return r.RawBody
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
