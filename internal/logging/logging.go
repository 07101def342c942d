package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var root = struct {
	logger *logrus.Logger
	mutex  *sync.Mutex
}{
	logger: func() *logrus.Logger {
		l := logrus.New()
		l.SetFormatter(textFormatter())
		return l
	}(),
	mutex: &sync.Mutex{},
}

// New returns a logger carrying a component field.
func New(component string) *logrus.Entry {
	return root.logger.WithField("component", component)
}

// Configure applies a level ("debug", "info", ...) and a format ("text" or
// "json") to the root logger. Empty values leave the current setting alone.
func Configure(level, format string) error {
	root.mutex.Lock()
	defer root.mutex.Unlock()

	if lvl := strings.TrimSpace(level); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		root.logger.SetLevel(parsed)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
	case "text":
		root.logger.SetFormatter(textFormatter())
	case "json":
		root.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// SetOutput redirects the root logger.
func SetOutput(w io.Writer) {
	root.mutex.Lock()
	root.logger.SetOutput(w)
	root.mutex.Unlock()
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp: true,
	}
}
