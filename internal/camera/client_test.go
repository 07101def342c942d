package camera

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	if _, err := NewClient("/snapshot", time.Second); err == nil {
		t.Fatalf("NewClient returned nil error, want error")
	}
}

func TestFetchSnapshot_ReturnsBodyAndContentType(t *testing.T) {
	t.Parallel()

	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 'j', 'f', 'i', 'f'}
	var gotUserAgent, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("action")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpeg)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/webcam/?action=snapshot", 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot returned error: %v", err)
	}
	if !bytes.Equal(snap.Data, jpeg) {
		t.Fatalf("Data = %v, want %v", snap.Data, jpeg)
	}
	if snap.ContentType != "image/jpeg" {
		t.Fatalf("ContentType = %q, want image/jpeg", snap.ContentType)
	}
	if gotQuery != "snapshot" {
		t.Fatalf("action query = %q, want snapshot", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "printcam/") {
		t.Fatalf("User-Agent = %q, want printcam/*", gotUserAgent)
	}
}

func TestFetchSnapshot_Errors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/empty":
			w.WriteHeader(http.StatusOK)
		case "/oversize":
			_, _ = w.Write(make([]byte, MaxSnapshotBytes+1))
		case "/broken":
			http.Error(w, "camera offline", http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	empty, err := NewClient(server.URL+"/empty", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := empty.FetchSnapshot(context.Background()); !errors.Is(err, ErrEmptySnapshot) {
		t.Fatalf("FetchSnapshot error = %v, want ErrEmptySnapshot", err)
	}

	broken, err := NewClient(server.URL+"/broken", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = broken.FetchSnapshot(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 503") {
		t.Fatalf("FetchSnapshot error = %v, want status 503 error", err)
	}

	oversize, err := NewClient(server.URL+"/oversize", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = oversize.FetchSnapshot(context.Background())
	if err == nil || !strings.Contains(err.Error(), "snapshot exceeds") {
		t.Fatalf("FetchSnapshot error = %v, want size cap error", err)
	}
}

func TestFetchSnapshot_AcceptsExactlyMaxBytes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, MaxSnapshotBytes))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/at-limit", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot returned error: %v", err)
	}
	if len(snap.Data) != MaxSnapshotBytes {
		t.Fatalf("len(Data) = %d, want %d", len(snap.Data), MaxSnapshotBytes)
	}
}

func TestFetchSnapshot_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr+"/snapshot", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchSnapshot(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchSnapshot error = %v, want execute request error", err)
	}
}
