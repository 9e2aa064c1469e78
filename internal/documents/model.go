package documents

import "time"

// Document represents user-submitted source material owned by a user.
// Exactly one of Content or FilePath is authoritative for extraction:
// a non-empty Content always wins.
type Document struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FilePath  string    `json:"file_path,omitempty"`
	FileType  FileType  `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
}
