// Package files exposes the uploader over HTTP.
//
// # HTTP Endpoints
//
//   - POST /files : Uploads the multipart field "file" (optional form field "folder").
//   - GET /files : Lists stored files (optional ?folder=).
//   - DELETE /files?key= : Deletes a file by its full key.
//
// Invalid arguments map to 400, every other uploader error to 500. Error
// bodies carry the generic uploader message only.
package files
