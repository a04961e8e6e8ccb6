package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"path"
	"strings"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/observability"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/storage"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

const (
	DefaultMaxUploadSizeMB = 10
	ThumbnailMaxSize       = 320
	JPEGQuality            = 82
)

type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// UploadResult carries the stored object URLs back to the admin UI.
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

type UploadService struct {
	store              storage.ObjectStore
	maxUploadSizeBytes int64
}

func NewUploadService(store storage.ObjectStore, maxUploadSizeMB int) *UploadService {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = DefaultMaxUploadSizeMB
	}
	return &UploadService{
		store:              store,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if s.store == nil {
		return nil, models.NewInternalError(fmt.Errorf("object storage is not configured"))
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(in.Content)
	if !strings.HasPrefix(detectedType, "image/") {
		observability.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		observability.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Invalid image file")
	}

	key := buildObjectKey(in.Filename)

	url, err := s.store.Put(ctx, key, bytes.NewReader(in.Content), int64(len(in.Content)), detectedType)
	if err != nil {
		observability.UploadsTotal.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	thumb := resizeToFit(decoded, ThumbnailMaxSize, ThumbnailMaxSize)
	encodedThumb, err := encodeJPEG(thumb, JPEGQuality)
	if err != nil {
		observability.UploadsTotal.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	thumbKey := thumbnailKey(key)
	thumbURL, err := s.store.Put(ctx, thumbKey, bytes.NewReader(encodedThumb), int64(len(encodedThumb)), "image/jpeg")
	if err != nil {
		observability.UploadsTotal.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	observability.UploadsTotal.WithLabelValues("ok").Inc()
	observability.UploadBytes.Observe(float64(len(in.Content)))

	return &UploadResult{
		URL:          url,
		ThumbnailURL: thumbURL,
		Size:         int64(len(in.Content)),
		ContentType:  detectedType,
	}, nil
}

func buildObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)
}

func thumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb.jpg"
}

// resizeToFit scales img down so both dimensions fit within maxW x maxH,
// preserving aspect ratio. Images already small enough pass through.
func resizeToFit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
