package receipt

import (
	"context"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through receipt.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const contentTypePDF = "application/pdf"

type blobArchive struct {
	bucket *blob.Bucket
	base   string
}

// OpenArchive opens the bucket behind bucketURL, e.g. "file:///var/receipts"
// or "mem://".
func OpenArchive(ctx context.Context, bucketURL string) (service.ReceiptArchive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open receipt bucket %s", bucketURL)
	}

	return &blobArchive{bucket: bucket, base: locationBase(bucketURL)}, nil
}

// ArchiveParams defines the dependencies of the fx-managed archive
type ArchiveParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewArchive opens the configured bucket and closes it with the app.
func NewArchive(params ArchiveParams) (service.ReceiptArchive, error) {
	if params.Config.Receipt == nil || params.Config.Receipt.BucketURL == "" {
		return nil, errors.New("receipt.bucketUrl is required")
	}

	archive, err := OpenArchive(context.Background(), params.Config.Receipt.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.StopHook(archive.Close))

	return archive, nil
}

func (a *blobArchive) Save(ctx context.Context, name string, data []byte) (string, error) {
	err := a.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: contentTypePDF})
	if err != nil {
		return "", errors.Wrapf(err, "failed to archive %s", name)
	}

	if strings.HasSuffix(a.base, "/") {
		return a.base + name, nil
	}

	return a.base + "/" + name, nil
}

func (a *blobArchive) Close() error {
	return a.bucket.Close()
}

// locationBase strips driver options from a bucket URL.
func locationBase(bucketURL string) string {
	base, _, _ := strings.Cut(bucketURL, "?")

	return base
}
