// services/storage.go - stored image assets
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload kinds map to subdirectories under the media root.
var uploadDirs = map[string]string{
	"question": "question_images",
	"quiz":     "quiz_images",
	"profile":  "profile_photos",
}

// MediaRoot is the on-disk directory backing the image asset store.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "./media"
}

// AbsoluteMediaURL turns a stored asset path into a retrievable URL.
// Empty paths stay empty so optional images serialize as null/"".
func AbsoluteMediaURL(path string) string {
	if path == "" {
		return ""
	}
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return strings.TrimSuffix(base, "/") + "/media/" + strings.TrimPrefix(path, "/")
}

// NewImagePath reserves a stable location for an uploaded image. It
// returns the stored (relative) asset path and the absolute filesystem
// path the caller should write the upload to. Filenames are random so
// uploads never collide or overwrite each other.
func NewImagePath(kind, originalName string) (string, string, error) {
	dir, ok := uploadDirs[kind]
	if !ok {
		return "", "", NewValidationError("kind", "Upload kind must be one of: question, quiz, profile.")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", "", NewValidationError("image", "Unsupported image type.")
	}

	if err := os.MkdirAll(filepath.Join(MediaRoot(), dir), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to prepare media directory: %w", err)
	}

	name := uuid.New().String() + ext
	stored := dir + "/" + name
	return stored, filepath.Join(MediaRoot(), dir, name), nil
}
