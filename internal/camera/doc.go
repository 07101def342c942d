// Package camera fetches still images from an HTTP snapshot URL such as
// mjpg-streamer's "?action=snapshot" endpoint.
//
// # Request Handling
//
// FetchSnapshot issues a single GET with Accept: image/* and the printcam
// User-Agent. The client timeout covers the whole exchange, body included.
//
// # Errors
//
//   - "execute request: ...": transport failure (refused, timeout, DNS)
//   - "snapshot returned status N": any non-2xx answer
//   - ErrEmptySnapshot: a 2xx answer with no body
//   - "snapshot exceeds N bytes": the body is larger than MaxSnapshotBytes
//
// At most MaxSnapshotBytes+1 bytes are read, so a URL pointing at an MJPEG
// stream instead of a still image fails instead of buffering forever.
package camera
