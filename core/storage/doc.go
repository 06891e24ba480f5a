// Package storage provides the object storage collaborator used by the uploader.
//
// It wraps the MinIO Go client, which speaks the S3 protocol to both AWS S3 and
// self-hosted MinIO instances, behind the narrow Client interface.
//
// # Client Interface
//
// The Client interface lists only the calls the uploader makes, which keeps
// it easy to mock storage interactions in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content with size and options (ACL, content type).
//   - ListObjects: Streams objects under a prefix.
//   - RemoveObject: Deletes a single object.
//
// # Configuration
//
// Config carries the endpoint, credentials, bucket and upload defaults.
// ApplyDefaults fills optional fields and Validate rejects missing required ones.
//
// # Usage
//
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
//	client, err := storage.NewClient(cfg)
package storage
