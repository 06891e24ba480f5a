package uploader

import (
	"context"
	"os"
	"strings"
	"time"

	"s3-uploader/core/errs"
	"s3-uploader/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// aclHeader is passed through as-is by minio-go since it carries the x-amz- prefix.
const aclHeader = "x-amz-acl"

// Uploader stores files under a folder prefix in a single bucket.
// Its configuration is fixed at construction.
type Uploader struct {
	cfg    storage.Config
	client storage.Client
	logger *zap.Logger

	now    func() time.Time
	suffix func() string
}

// New validates cfg and connects a minio-backed client.
func New(cfg storage.Config, logger *zap.Logger) (*Uploader, error) {
	u, err := newUploader(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := u.Connect(); err != nil {
		return nil, err
	}
	return u, nil
}

// NewFromMap decodes values with ConfigFromMap and connects.
func NewFromMap(values map[string]any, logger *zap.Logger) (*Uploader, error) {
	cfg, err := ConfigFromMap(values)
	if err != nil {
		return nil, err
	}
	return New(cfg, logger)
}

// NewWithClient validates cfg and uses the supplied client instead of connecting.
func NewWithClient(cfg storage.Config, client storage.Client, logger *zap.Logger) (*Uploader, error) {
	u, err := newUploader(cfg, logger)
	if err != nil {
		return nil, err
	}
	u.client = client
	return u, nil
}

func newUploader(cfg storage.Config, logger *zap.Logger) (*Uploader, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Uploader{
		cfg:    cfg,
		logger: logger.With(zap.String("bucket", cfg.Bucket)),
		now:    time.Now,
		suffix: randomSuffix,
	}, nil
}

// Connect builds a new storage client from the configuration and replaces
// the one currently held.
func (u *Uploader) Connect() error {
	client, err := storage.NewClient(u.cfg)
	if err != nil {
		return errs.Wrap(errs.KindConfiguration, "failed to create storage client", err)
	}
	u.client = client
	u.logger.Debug("Connected storage client",
		zap.String("endpoint", u.cfg.Endpoint),
		zap.String("region", u.cfg.Region),
		zap.String("api_version", u.cfg.APIVersion))
	return nil
}

// Config returns a copy of the configuration.
func (u *Uploader) Config() storage.Config {
	return u.cfg
}

// Ping checks that the configured bucket exists and is reachable.
func (u *Uploader) Ping(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.cfg.Bucket)
	if err != nil {
		u.logger.Error("Bucket check failed", zap.Error(err))
		return errs.Wrap(errs.KindConfiguration, "bucket is not reachable", err)
	}
	if !exists {
		return errs.New(errs.KindConfiguration, "bucket does not exist")
	}
	return nil
}

// Add uploads file under the folder prefix, joined with folder when set.
// The object name is the normalized display name prefixed with the upload
// time. The ACL and a sniffed content type are attached to the object.
func (u *Uploader) Add(ctx context.Context, file File, folder string) (*UploadResult, error) {
	if file.DisplayName == "" || file.SourcePath == "" {
		return nil, errs.New(errs.KindInvalidArgument, "file name and source path are required")
	}

	path := u.path(folder)
	name := u.objectName(file.DisplayName)
	key := path + "/" + name
	l := u.logger.With(zap.String("key", key))

	f, err := os.Open(file.SourcePath)
	if err != nil {
		l.Error("Failed to open source file", zap.String("source", file.SourcePath), zap.Error(err))
		return nil, errs.Wrap(errs.KindUpload, "upload failed", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		l.Error("Failed to stat source file", zap.Error(err))
		return nil, errs.Wrap(errs.KindUpload, "upload failed", err)
	}

	contentType, err := detectContentType(f, file.DisplayName)
	if err != nil {
		l.Error("Failed to read source file", zap.Error(err))
		return nil, errs.Wrap(errs.KindUpload, "upload failed", err)
	}

	_, err = u.client.PutObject(ctx, u.cfg.Bucket, key, f, stat.Size(), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{aclHeader: u.cfg.ACL},
	})
	if err != nil {
		l.Error("Upload failed", zap.Error(err))
		return nil, errs.Wrap(errs.KindUpload, "upload failed", err)
	}

	l.Info("Uploaded object",
		zap.Int64("size", stat.Size()),
		zap.String("content_type", contentType))

	return &UploadResult{Path: path + "/", Object: name}, nil
}

// List returns every object under the folder prefix, joined with folder
// when set, in the order the backend yields them. Directory markers for the
// prefix itself are skipped.
func (u *Uploader) List(ctx context.Context, folder string) ([]StoredObject, error) {
	prefix := u.path(folder)

	// Cancelling stops the listing goroutine if we return early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := make([]StoredObject, 0)
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range u.client.ListObjects(ctx, u.cfg.Bucket, opts) {
		if obj.Err != nil {
			u.logger.Error("List failed", zap.String("prefix", prefix), zap.Error(obj.Err))
			return nil, errs.Wrap(errs.KindList, "list failed", obj.Err)
		}

		rest := strings.TrimPrefix(obj.Key, prefix)
		if rest == "" || rest == "/" {
			continue
		}

		objects = append(objects, StoredObject{
			Name:         strings.TrimPrefix(obj.Key, prefix+"/"),
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified.Format(lastModifiedLayout),
		})
	}

	u.logger.Info("Listed objects", zap.String("prefix", prefix), zap.Int("count", len(objects)))
	return objects, nil
}

// Delete removes the object at key, which must be a full object key.
// Deleting a key that does not exist succeeds.
func (u *Uploader) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errs.New(errs.KindInvalidArgument, "invalid key")
	}

	if err := u.client.RemoveObject(ctx, u.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		u.logger.Error("Delete failed", zap.String("key", key), zap.Error(err))
		return false, errs.Wrap(errs.KindDeletion, "delete failed", err)
	}

	u.logger.Info("Deleted object", zap.String("key", key))
	return true, nil
}
