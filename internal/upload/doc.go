// Package upload sends the snapshot and status line to the remote status
// endpoint as a multipart PATCH with basic authentication.
//
// # Multipart Layout
//
//   - image: file part named snapshot.jpg with content type image/jpg,
//     present only when a snapshot was captured
//   - status: form field with the printer status line, present only when
//     a status was fetched
//
// A payload with neither part is refused with ErrEmptyPayload before any
// request is made.
//
// # Results
//
// Patch returns a Result for every answer the endpoint gives. Body holds
// the decoded JSON object when the response is one; RawBody always holds
// the text. Non-2xx answers come back with the Result and an error
// wrapping ErrUploadRejected. Transport failures return a zero Result.
package upload
