package uploader

// File describes a local file to upload.
type File struct {
	// DisplayName is the original filename; it is normalized into the object name.
	DisplayName string
	// SourcePath is the readable local path holding the content.
	SourcePath string
}

// UploadResult is returned by Add.
type UploadResult struct {
	// Path is the effective folder path, with a trailing slash.
	Path string `json:"path"`
	// Object is the generated object name.
	Object string `json:"object"`
}

// Key returns the full object key.
func (r UploadResult) Key() string {
	return r.Path + r.Object
}

// StoredObject describes an object returned by List.
type StoredObject struct {
	// Name is the key with the folder path stripped.
	Name string `json:"name"`
	// Key is the full object key.
	Key string `json:"key"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is an ISO-8601 timestamp with a numeric offset.
	LastModified string `json:"last_modified"`
}
