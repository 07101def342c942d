package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_JSONCarriesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Configure("info", "text")
	})

	if err := Configure("debug", "json"); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	New("camera").WithField("bytes", 12).Debug("Fetching snapshot")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "camera" {
		t.Fatalf("component = %v, want camera", entry["component"])
	}
	if entry["msg"] != "Fetching snapshot" {
		t.Fatalf("msg = %v, want Fetching snapshot", entry["msg"])
	}
	if entry["bytes"] != float64(12) {
		t.Fatalf("bytes = %v, want 12", entry["bytes"])
	}
}

func TestConfigure_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Configure("info", "text")
	})

	if err := Configure("warn", "text"); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	if root.logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %v, want warn", root.logger.GetLevel())
	}
	New("app").Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
}

func TestConfigure_RejectsUnknownValues(t *testing.T) {
	if err := Configure("loud", ""); err == nil || !strings.Contains(err.Error(), "parse log level") {
		t.Fatalf("Configure(loud) error = %v, want parse log level error", err)
	}
	if err := Configure("", "xml"); err == nil || !strings.Contains(err.Error(), "unknown log format") {
		t.Fatalf("Configure(xml) error = %v, want unknown log format error", err)
	}
}
