package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/printcam/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.StringP("config", "c", "", "printcam config path (optional, defaults to ~/.config/printcam/config.toml)")
	dryRun := flag.BoolP("dry-run", "n", false, "fetch snapshot and status, print them instead of uploading")
	logLevel := flag.String("log-level", "", "log level: trace, debug, info, warn, error")
	logFormat := flag.String("log-format", "", "log format: text or json")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx, app.Options{
		ConfigPath: *configPath,
		DryRun:     *dryRun,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		Out:        os.Stdout,
	})
}
