package service

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"strings"
	"testing"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore collects uploaded objects in memory.
type memStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	m.types[key] = contentType
	return "http://store.local/media/" + key, nil
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploadStoresOriginalAndThumbnail(t *testing.T) {
	store := newMemStore()
	svc := NewUploadService(store, 10)

	res, err := svc.Upload(context.Background(), UploadInput{
		Filename: "cover.jpg",
		Content:  testJPEG(t, 800, 600),
	})
	require.NoError(t, err)

	assert.Contains(t, res.URL, "http://store.local/media/uploads/")
	assert.Contains(t, res.ThumbnailURL, "_thumb.jpg")
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Len(t, store.objects, 2)

	// Thumbnail fits within the configured bounds.
	var thumbKey string
	for key := range store.objects {
		if strings.HasSuffix(key, "_thumb.jpg") {
			thumbKey = key
		}
	}
	require.NotEmpty(t, thumbKey)
	thumb, _, err := image.Decode(bytes.NewReader(store.objects[thumbKey]))
	require.NoError(t, err)
	assert.LessOrEqual(t, thumb.Bounds().Dx(), ThumbnailMaxSize)
	assert.LessOrEqual(t, thumb.Bounds().Dy(), ThumbnailMaxSize)
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := NewUploadService(newMemStore(), 10)

	_, err := svc.Upload(context.Background(), UploadInput{
		Filename: "notes.txt",
		Content:  []byte("plain text, definitely not an image"),
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUploadRejectsEmptyAndOversized(t *testing.T) {
	svc := NewUploadService(newMemStore(), 1)

	_, err := svc.Upload(context.Background(), UploadInput{Filename: "x.jpg"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	big := make([]byte, 2*1024*1024)
	_, err = svc.Upload(context.Background(), UploadInput{Filename: "big.jpg", Content: big})
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "File too large")
}

func TestResizeToFitKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := resizeToFit(img, ThumbnailMaxSize, ThumbnailMaxSize)
	assert.Equal(t, img.Bounds(), out.Bounds())
}
