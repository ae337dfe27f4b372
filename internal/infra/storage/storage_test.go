package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_Upload(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "https://cdn.example.com/", "listings")

	url, err := store.Upload(ctx, "abc 1.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/listings/abc%201.jpg", url)

	data, err := bucket.ReadAll(ctx, "listings/abc 1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "listings/abc 1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

type fakeUploader struct {
	params uploader.UploadParams
	result *uploader.UploadResult
}

func (f *fakeUploader) Upload(_ context.Context, _ any, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.params = params

	return f.result, nil
}

func TestCloudinaryStore_Upload(t *testing.T) {
	fake := &fakeUploader{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/image/upload/listings/abc.jpg"}}
	store := &cloudinaryStore{uploader: fake, folder: "listings"}

	url, err := store.Upload(context.Background(), "abc.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/listings/abc.jpg", url)
	assert.Equal(t, "abc", fake.params.PublicID)
	assert.Equal(t, "listings", fake.params.Folder)
}

func TestCloudinaryStore_ProviderError(t *testing.T) {
	fake := &fakeUploader{result: &uploader.UploadResult{}}
	fake.result.Error.Message = "Invalid image file"
	store := &cloudinaryStore{uploader: fake}

	_, err := store.Upload(context.Background(), "abc.jpg", "image/jpeg", strings.NewReader("x"))
	assert.Error(t, err)
}
