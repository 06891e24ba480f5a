// Package uploader stores files in a single bucket under a configurable
// folder prefix.
//
// It is the layer between callers (CLI, HTTP feature) and the storage client:
// it normalizes filenames, builds object keys, shapes listings and maps
// backend failures onto core/errs kinds.
//
// # Keys
//
// Every key is "<folder>[/<sub folder>]/<YYYYMMDDHHMMSS>_<name>", where name
// is the original filename with spaces turned into underscores and anything
// outside [A-Za-z0-9-_.] removed. The timestamp is in UTC. With
// unique_suffix enabled an 8 character random fragment follows the timestamp.
//
// # Operations
//
//   - Add: Uploads a local file with the configured ACL and a sniffed content type.
//   - List: Drains the listing under a folder, skipping directory markers.
//   - Delete: Removes an object by its full key.
//   - Ping: Verifies the bucket is reachable.
//
// # Usage
//
//	u, err := uploader.New(cfg.Storage, logger)
//	res, err := u.Add(ctx, uploader.File{DisplayName: "my photo.jpg", SourcePath: tmp}, "avatars")
//	// res.Key() == "images/avatars/20240115103000_my_photo.jpg"
package uploader
