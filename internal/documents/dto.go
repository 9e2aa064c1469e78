package documents

import "time"

// DocumentResponse is the outward-facing representation of a document in lists.
// Raw pasted content is elided; clients fetch it through generation results.
type DocumentResponse struct {
	DocumentID string    `json:"document_id"`
	Title      string    `json:"title"`
	FileType   FileType  `json:"file_type"`
	HasContent bool      `json:"has_content"`
	FilePath   string    `json:"file_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		Title:      doc.Title,
		FileType:   doc.FileType,
		HasContent: doc.Content != "",
		FilePath:   doc.FilePath,
		CreatedAt:  doc.CreatedAt,
	}
}
