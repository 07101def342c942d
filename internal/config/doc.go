// Package config loads printcam settings from an optional TOML file and the
// process environment.
//
// # Resolution Order
//
//  1. Defaults (timeout 10s, log level "info", log format "text")
//  2. The TOML file at the given path, or ~/.config/printcam/config.toml
//  3. Environment variables, which always win over the file
//
// A missing config file is not an error; most deployments configure printcam
// purely through the environment.
//
// # Environment Variables
//
//   - SNAPSHOT_URL: camera snapshot URL (required)
//   - PRINTER_ENDPOINT: status endpoint receiving the PATCH (required)
//   - USER, PASSWORD: basic auth credentials for PRINTER_ENDPOINT (required)
//   - OCTOPRINT_URL: OctoPrint base URL; status is skipped when unset
//   - OCTOPRINT_API_KEY: sent as X-Api-Key to OctoPrint
//   - PRINTCAM_TIMEOUT: per-request timeout as a Go duration ("15s")
//   - PRINTCAM_LOG_LEVEL, PRINTCAM_LOG_FORMAT: logging setup
//
// Variables exported with an empty value are treated as unset.
//
// # Credentials and the USER Variable
//
// USER is also exported by login shells with the name of the local account.
// Because the environment wins over the file, the TOML user key only takes
// effect where USER is unset or empty (cron, systemd units, containers).
// When running printcam from an interactive shell with a file-only
// configuration, export USER explicitly or the upload will authenticate as
// the shell user:
//
//	USER=printer printcam --config ~/.config/printcam/config.toml
//
// # TOML Format
//
//	snapshot_url = "http://octopi.local/webcam/?action=snapshot"
//	printer_endpoint = "https://status.example.com/api/printers/1/"
//	user = "printer"
//	password = "secret"
//	octoprint_url = "http://octopi.local"
//	octoprint_api_key = "ABCDEF"
//	timeout = "15s"
//
// # Validation
//
// Load fails fast: every missing required key is reported in a single error,
// URLs must be absolute http(s) URLs and the timeout must be positive.
package config
