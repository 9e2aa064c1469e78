package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/shared/storage/object"
)

// Extract resolves a document to plain text.
//
// A non-empty Content field wins outright and is returned verbatim; otherwise
// the referenced blob is downloaded and decoded by file type. Fetch and parse
// failures are folded into the returned text as a diagnostic string rather
// than propagated, preserving the upstream swallow-and-continue policy; the
// caller treats an empty result as "no content available".
func Extract(ctx context.Context, store object.ObjectStore, doc documents.Document) string {
	if doc.Content != "" {
		return doc.Content
	}
	if doc.FilePath == "" {
		return ""
	}

	data, err := object.Download(ctx, store, doc.FilePath)
	if err != nil {
		return fmt.Sprintf("Error reading file: %s", err.Error())
	}

	if doc.FileType == documents.FileTypePDF {
		text, err := extractPDF(data)
		if err != nil {
			return fmt.Sprintf("Error reading file: %s", err.Error())
		}
		return text
	}

	return decodeLossyUTF8(data)
}

// extractPDF concatenates per-page text with newline separators, in page order.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func decodeLossyUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
