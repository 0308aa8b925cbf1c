package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"math"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// BucketPrefix namespaces every work-update image inside the blob store.
// Image URLs must contain this segment to be deletable.
const BucketPrefix = "work-updates"

type FileService interface {
	// UploadWorkUpdateImage stores an image under the entry date's folder
	// and returns its public URL.
	UploadWorkUpdateImage(ctx context.Context, date time.Time, file io.Reader, filename string) (string, error)

	// DeleteByURL removes the blob a public URL points at. The URL must
	// contain the bucket segment; a blob that is already gone is success.
	DeleteByURL(ctx context.Context, imageURL string) error
}

type fileServiceImpl struct {
	storage storage.BlobStorage
}

func NewFileService(storage storage.BlobStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadWorkUpdateImage uploads a pasted/dropped screenshot. Images are
// compressed to a bounded JPEG before storage; PNGs come out as JPEG too.
func (s *fileServiceImpl) UploadWorkUpdateImage(ctx context.Context, date time.Time, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 300*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// Path scheme: work-updates/{yyyy-MM-dd}/{unix-ts}-{random}.jpg
	dateStr := date.Format("2006-01-02")
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	newFilename := fmt.Sprintf("%d-%s.jpg", time.Now().Unix(), suffix)
	blobPath := path.Join(BucketPrefix, dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), blobPath, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.storage.PublicURL(uploadedPath), nil
}

// DeleteByURL parses a public URL back into a blob path and deletes the
// blob. URLs that never pointed into the bucket fail closed.
func (s *fileServiceImpl) DeleteByURL(ctx context.Context, imageURL string) error {
	blobPath, err := PathFromURL(imageURL)
	if err != nil {
		return err
	}
	return s.storage.Delete(ctx, blobPath)
}

// PathFromURL recovers the bucket-relative blob path from a public image
// URL. Returns worklog.ErrInvalidImageURL when the URL does not contain the
// bucket segment, or contains nothing after it.
func PathFromURL(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", worklog.ErrInvalidImageURL, err)
	}

	parts := strings.Split(parsed.Path, "/")
	bucketIdx := -1
	for i, part := range parts {
		if part == BucketPrefix {
			bucketIdx = i
			break
		}
	}
	if bucketIdx == -1 || bucketIdx == len(parts)-1 {
		return "", worklog.ErrInvalidImageURL
	}

	return path.Join(append([]string{BucketPrefix}, parts[bucketIdx+1:]...)...), nil
}

// ==================== HELPER FUNCTIONS ====================

// compressImage compresses an image into the [minSize, maxSize] byte range,
// first by lowering JPEG quality, then by downscaling.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}

		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}
		if len(compressed) > maxSize {
			quality -= 5
			continue
		}
		// Smaller than minSize at acceptable quality; nothing to gain by
		// inflating it back up.
		return compressed, nil
	}

	// Quality reduction wasn't enough; downscale toward the middle of the
	// target range.
	if len(compressed) > maxSize {
		targetSize := (maxSize + minSize) / 2
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(originalWidth) * ratio)
		newHeight := int(float64(originalHeight) * ratio)

		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}
		compressed = buf.Bytes()
	}

	return compressed, nil
}

// resizeImage resizes an image using high-quality interpolation.
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
