package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStore is the slice of the storage client the image service needs.
type ObjectStore interface {
	Upload(objectPath string, data []byte, contentType string) (string, error)
	Remove(objectPath string) error
	PathFromURL(publicURL string) (string, bool)
}

// ImageService uploads profile and gallery images and performs best-effort
// removal of stored objects.
type ImageService struct {
	store  ObjectStore
	logger *zap.Logger
}

func NewImageService(store ObjectStore, logger *zap.Logger) *ImageService {
	return &ImageService{
		store:  store,
		logger: logger,
	}
}

func (s *ImageService) UploadCustomerProfileImage(customerID uuid.UUID, file *multipart.FileHeader) (string, error) {
	objectPath := fmt.Sprintf("customers/%s/profile/%s", customerID.String(), objectName(file.Filename))
	return s.upload(objectPath, file)
}

func (s *ImageService) UploadPainterProfileImage(painterID uuid.UUID, file *multipart.FileHeader) (string, error) {
	objectPath := fmt.Sprintf("painters/%s/profile/%s", painterID.String(), objectName(file.Filename))
	return s.upload(objectPath, file)
}

func (s *ImageService) UploadGalleryImage(painterID uuid.UUID, file *multipart.FileHeader) (string, error) {
	objectPath := fmt.Sprintf("painters/%s/gallery/%s", painterID.String(), objectName(file.Filename))
	return s.upload(objectPath, file)
}

// RemoveStoredImage deletes the backing object of an image reference. The
// deletion is best-effort: failures are logged and never propagated, so the
// record mutation that preceded it stands regardless of provider
// availability. References not served from our bucket are skipped.
func (s *ImageService) RemoveStoredImage(ref string) {
	objectPath, ok := s.store.PathFromURL(ref)
	if !ok {
		return
	}
	if err := s.store.Remove(objectPath); err != nil {
		s.logger.Warn("failed to delete stored image",
			zap.String("object_path", objectPath),
			zap.Error(err),
		)
	}
}

func (s *ImageService) upload(objectPath string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	url, err := s.store.Upload(objectPath, data, contentTypeFor(file.Filename))
	if err != nil {
		return "", err
	}
	return url, nil
}

// objectName prefixes the original filename with a timestamp so repeated
// uploads of the same name never collide.
func objectName(filename string) string {
	base := path.Base(filename)
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
