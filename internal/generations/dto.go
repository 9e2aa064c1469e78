package generations

import "time"

// GenerationResponse is the API shape for a generation record.
type GenerationResponse struct {
	GenerationID   string         `json:"generation_id"`
	DocumentID     string         `json:"document_id"`
	GenerationType string         `json:"generation_type"`
	Content        map[string]any `json:"content"`
	CreatedAt      time.Time      `json:"created_at"`
}

func toResponse(rec GeneratedContent) GenerationResponse {
	return GenerationResponse{
		GenerationID:   rec.ID,
		DocumentID:     rec.DocumentID,
		GenerationType: rec.GenerationType,
		Content:        rec.Content,
		CreatedAt:      rec.CreatedAt,
	}
}
