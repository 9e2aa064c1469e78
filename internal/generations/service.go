package generations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/extract"
	"edubot-backend/internal/llm"
	"edubot-backend/internal/quota"
	"edubot-backend/internal/shared/metrics"
	"edubot-backend/internal/shared/storage/object"
	"edubot-backend/internal/shared/telemetry"
)

// Service runs the generation pipeline: quota check, document fetch, text
// extraction, model invocation, persistence, quota commit.
type Service struct {
	Docs  documents.Repo
	Store object.ObjectStore
	Quota *quota.Service
	Model llm.Client
	Repo  Repo

	// LegacyModelErrors keeps the original failure policy: model and parse
	// failures are persisted as {"error": msg} records that count against
	// quota and return success. Off, they abort the pipeline and persist
	// nothing.
	LegacyModelErrors bool
}

// Generate runs the full pipeline for one document and mode.
func (s *Service) Generate(ctx context.Context, ownerID, documentID string, mode llm.Mode) (GeneratedContent, error) {
	metrics.IncGenerationStarted()
	start := time.Now()

	checked, err := s.Quota.CheckAndPrepare(ctx, ownerID)
	if err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			metrics.IncQuotaRejected()
		}
		return GeneratedContent{}, err
	}

	doc, err := s.Docs.GetByID(ctx, ownerID, documentID)
	if err != nil {
		return GeneratedContent{}, err
	}

	text := extract.Extract(ctx, s.Store, doc)
	if strings.TrimSpace(text) == "" {
		return GeneratedContent{}, ErrNoContent
	}
	text = llm.TruncateText(text, llm.MaxPromptChars)

	prompt, err := llm.BuildPrompt(mode, text)
	if err != nil {
		return GeneratedContent{}, err
	}

	content, err := s.invokeModel(ctx, prompt)
	if err != nil {
		metrics.IncGenerationFailed()
		return GeneratedContent{}, err
	}

	rec := GeneratedContent{
		ID:             uuid.NewString(),
		DocumentID:     doc.ID,
		OwnerID:        ownerID,
		GenerationType: string(mode),
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncGenerationFailed()
		return GeneratedContent{}, err
	}

	if err := s.Quota.CommitIncrement(ctx, ownerID, checked); err != nil {
		telemetry.Error("quota commit failed after persist", map[string]any{
			"owner_id":      ownerID,
			"generation_id": rec.ID,
			"error":         err.Error(),
		})
		metrics.IncGenerationFailed()
		return GeneratedContent{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	return rec, nil
}

// invokeModel calls the model and normalizes its output. In legacy mode a
// failed call or unparseable response degrades to an {"error": msg} payload
// instead of an error.
func (s *Service) invokeModel(ctx context.Context, prompt string) (map[string]any, error) {
	raw, err := s.Model.Complete(ctx, prompt)
	if err != nil {
		if s.LegacyModelErrors {
			telemetry.Warn("model call failed, persisting error payload", map[string]any{
				"error": err.Error(),
			})
			return map[string]any{"error": err.Error()}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrModelFailure, err)
	}

	content, err := Normalize(raw)
	if err != nil {
		if s.LegacyModelErrors {
			telemetry.Warn("model response parse failed, persisting error payload", map[string]any{
				"error": err.Error(),
			})
			return map[string]any{"error": err.Error()}, nil
		}
		return nil, err
	}
	return content, nil
}

// Get returns one generation record for an owner.
func (s *Service) Get(ctx context.Context, ownerID, generationID string) (GeneratedContent, error) {
	return s.Repo.GetByID(ctx, ownerID, generationID)
}

// List returns generation records for an owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]GeneratedContent, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}
