package storage

import (
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"estate/internal/domain/service"
	"estate/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	folder        string
}

// NewBlobStore writes into bucket and builds URLs under publicBaseURL.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL, folder string) service.ImageStore {
	return &blobStore{bucket: bucket, publicBaseURL: strings.TrimRight(publicBaseURL, "/"), folder: folder}
}

func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)

	return bucket, errors.Wrapf(err, "open bucket %s", bucketURL)
}

func (s *blobStore) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	key := path.Join(s.folder, name)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	return s.publicBaseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}
