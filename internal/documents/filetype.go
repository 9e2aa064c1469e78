package documents

import "strings"

// FileType classifies the stored payload for extraction purposes.
type FileType string

const (
	FileTypeText  FileType = "text"
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
)

// ParseFileType normalizes a caller-supplied file type. Clients commonly send
// the raw file extension, so common extensions map onto the canonical enum.
func ParseFileType(raw string) (FileType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text", "txt", "md", "markdown", "plain":
		return FileTypeText, true
	case "pdf":
		return FileTypePDF, true
	case "image", "png", "jpg", "jpeg", "gif", "webp":
		return FileTypeImage, true
	default:
		return "", false
	}
}
