package generations

import "time"

// GeneratedContent is one persisted model output for a document.
type GeneratedContent struct {
	ID             string         `json:"id"`
	DocumentID     string         `json:"document_id"`
	OwnerID        string         `json:"owner_id"`
	GenerationType string         `json:"generation_type"`
	Content        map[string]any `json:"content"`
	CreatedAt      time.Time      `json:"created_at"`
}
