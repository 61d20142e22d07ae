// Package archive stores exported reports in a gocloud.dev blob bucket.
package archive

import (
	"context"
	"log/slog"
	"path"

	"bookkeeper/config"
	"bookkeeper/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket schemes: file://, mem:// and gs://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobArchive struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params holds dependencies for the report archive, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without a bucket URL the archive is disabled.
func New(params Params) (service.ReportArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Report archive not configured")

		return &blobArchive{logger: params.Logger}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Report archive initialized", slog.String("bucket_url", cfg.BucketURL))

	return NewBlobArchive(bucket, cfg.Prefix, params.Logger), nil
}

// NewBlobArchive wraps an already opened bucket.
func NewBlobArchive(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.ReportArchive {
	return &blobArchive{bucket: bucket, prefix: prefix, logger: logger}
}

func (a *blobArchive) Enabled() bool {
	return a.bucket != nil
}

// Put writes data under prefix/key.
func (a *blobArchive) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if a.bucket == nil {
		return errors.New("report archive is not configured")
	}

	objectKey := path.Join(a.prefix, key)
	if err := a.bucket.WriteAll(ctx, objectKey, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", objectKey)
	}

	a.logger.InfoContext(ctx, "Report archived",
		slog.String("key", objectKey),
		slog.Int("bytes", len(data)),
	)

	return nil
}
