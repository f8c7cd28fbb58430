package documents

import (
	"fmt"
	"sort"
	"strings"

	"skiracer-backend/internal/shared/util"
)

// MaxFileSize is the upload size ceiling in bytes.
const MaxFileSize = 50 << 20 // 50MiB

// allowedMediaTypes maps each accepted MIME type to its extensions.
var allowedMediaTypes = map[string][]string{
	"video/mp4":       {".mp4"},
	"video/quicktime": {".mov"},
	"image/jpeg":      {".jpg", ".jpeg"},
	"image/png":       {".png"},
}

// mediaTypeAliases maps common browser-sent variants onto canonical types.
var mediaTypeAliases = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
	"video/x-m4v": "video/mp4",
}

// ValidateFile checks filename extension, declared media type, and size
// against the allow-list. Pure; performs no I/O. A sizeBytes of zero skips
// the size check (direct mode re-checks against the actual byte count).
func ValidateFile(filename, mediaType string, sizeBytes int64) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("no file provided for upload: %w", ErrInvalidInput)
	}
	if _, err := util.SanitizeFileName(filename); err != nil {
		return fmt.Errorf("filename %q is not valid: %w", filename, ErrInvalidInput)
	}

	ext, err := fileExtension(filename)
	if err != nil {
		return err
	}
	if !extensionAllowed(ext) {
		return fmt.Errorf("file type %q is not allowed; allowed types: %s: %w",
			ext, strings.Join(allowedExtensions(), ", "), ErrInvalidInput)
	}

	if mt := strings.ToLower(strings.TrimSpace(mediaType)); mt != "" {
		if _, ok := allowedMediaTypes[CanonicalMediaType(mt)]; !ok {
			return fmt.Errorf("media type %q is not allowed; allowed types: %s: %w",
				mt, strings.Join(allowedTypes(), ", "), ErrInvalidInput)
		}
	}

	if sizeBytes > MaxFileSize {
		return sizeError(sizeBytes)
	}
	return nil
}

// CanonicalMediaType resolves accepted aliases to their canonical type.
func CanonicalMediaType(mediaType string) string {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if canonical, ok := mediaTypeAliases[mt]; ok {
		return canonical
	}
	return mt
}

func sizeError(sizeBytes int64) error {
	return fmt.Errorf("file size (%d bytes) exceeds maximum allowed size (%d bytes / 50MiB): %w",
		sizeBytes, int64(MaxFileSize), ErrInvalidInput)
}

func fileExtension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", fmt.Errorf("filename %q has no extension: %w", filename, ErrInvalidInput)
	}
	return strings.ToLower(filename[idx:]), nil
}

func extensionAllowed(ext string) bool {
	for _, exts := range allowedMediaTypes {
		for _, allowed := range exts {
			if ext == allowed {
				return true
			}
		}
	}
	return false
}

func allowedExtensions() []string {
	var out []string
	for _, exts := range allowedMediaTypes {
		out = append(out, exts...)
	}
	sort.Strings(out)
	return out
}

func allowedTypes() []string {
	out := make([]string, 0, len(allowedMediaTypes))
	for mt := range allowedMediaTypes {
		out = append(out, mt)
	}
	sort.Strings(out)
	return out
}
