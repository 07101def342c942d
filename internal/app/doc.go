// Package app runs one printcam pass: fetch, combine, upload, exit.
//
// # Overview
//
// Run is the composition root. It loads configuration, builds the camera,
// OctoPrint and upload clients, and performs three sequential HTTP calls:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Environment + optional TOML
//	       ├─────> camera.FetchSnapshot()   GET SNAPSHOT_URL
//	       ├─────> octoprint.FetchStatus()  GET /api/printer (+ /api/job)
//	       └─────> upload.Patch()           PATCH PRINTER_ENDPOINT
//
// The status step only runs when OCTOPRINT_URL is set.
//
// # Failure Handling
//
// Fetch failures are logged and leave their part of the upload empty:
//
//   - snapshot failure: the PATCH carries only the status field
//   - status failure: the PATCH carries only the image
//   - OctoPrint 409: not a failure, the status is "Idle"
//
// Nothing is retried. Each invocation makes at most one attempt per call.
//
// # Exit Codes
//
//   - 0 (ExitOK): the endpoint answered 2xx, or a dry run had data to show
//   - 1 (ExitNoData): both fetches failed and no PATCH was sent, or the
//     configuration was invalid
//   - 2 (ExitUploadFailed): the PATCH failed in transport or was answered
//     with a non-2xx status
//
// # Dry Run
//
// With Options.DryRun the fetches run as usual but the PATCH is replaced by
// a rendered preview written to Options.Out.
package app
