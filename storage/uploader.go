package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader сохраняет файлы во внешнем объектном хранилище.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// AvatarKey builds the object key of a player's avatar. A fresh suffix per upload
// keeps CDN caches from serving the previous image.
func AvatarKey(playerID uuid.UUID, ext string) string {
	return fmt.Sprintf("avatars/%s/%s%s", playerID, uuid.NewString(), ext)
}

// ExtensionForContentType maps an image content type to a file extension.
func ExtensionForContentType(contentType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unsupported image content type: '%s'", contentType)
	}
}
