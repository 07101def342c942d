// Package octoprint provides a read-only client for the OctoPrint REST API
// and reduces its printer and job state to a single status line.
//
// # Endpoints
//
//   - GET /api/printer?exclude=temperature,sd: connection state and flags
//   - GET /api/job: current file and progress
//
// The job endpoint is only consulted when the printer reports the printing
// flag. Requests carry the X-Api-Key header when an API key is configured.
//
// # Idle Sentinel
//
// OctoPrint answers /api/printer with 409 Conflict when no printer is
// connected. FetchStatus maps that to Status{Idle: true} instead of an
// error, so a powered-off printer still produces an "Idle" status upload.
// A 409 from /api/job, seen when the printer disconnects between the two
// requests, is treated the same way. Every other failure (transport, a
// non-2xx or 204 answer, malformed JSON) is returned to the caller, which
// drops the status from the upload.
//
// # Status Line
//
// Status.String produces:
//
//   - "Idle" for the 409 sentinel, for an empty state text and for the
//     plain "Operational" state
//   - the printer's state text for other non-printing states ("Paused")
//   - "Printing <file>: <pct>% complete, <elapsed> elapsed, <left> left"
//     while printing, omitting parts OctoPrint reports as null
//
// Completion is OctoPrint's percentage (0-100), clamped and rounded to a
// whole number. Times are integer seconds rendered as Go durations.
package octoprint
