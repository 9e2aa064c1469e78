package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"edubot-backend/internal/shared/storage/object"
)

// Service contains ingestion logic for documents. The owner identity always
// comes from the authenticated caller, never from the request payload.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// IngestText records pasted text as a new document and returns its ID.
func (s *Service) IngestText(ctx context.Context, ownerID, title, content string) (Document, error) {
	if ownerID == "" {
		return Document{}, errors.New("owner id required")
	}
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if content == "" {
		return Document{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	doc := Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		FileType:  FileTypeText,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// IngestFileReference records a pointer to an already-uploaded blob.
func (s *Service) IngestFileReference(ctx context.Context, ownerID, title, filePath, fileType string) (Document, error) {
	if ownerID == "" {
		return Document{}, errors.New("owner id required")
	}
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(filePath) == "" {
		return Document{}, fmt.Errorf("%w: file_path is required", ErrInvalidInput)
	}
	parsed, ok := ParseFileType(fileType)
	if !ok {
		return Document{}, fmt.Errorf("%w: unsupported file_type %q", ErrInvalidInput, fileType)
	}

	doc := Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		FilePath:  filePath,
		FileType:  parsed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// IngestUpload saves an uploaded file to the object store and records a
// document referencing it.
func (s *Service) IngestUpload(ctx context.Context, ownerID, title, fileName string, r io.Reader) (Document, error) {
	if ownerID == "" {
		return Document{}, errors.New("owner id required")
	}
	if s.Store == nil {
		return Document{}, errors.New("object store not configured")
	}
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = fileName
	}

	fileType, ok := fileTypeFromName(fileName)
	if !ok {
		return Document{}, fmt.Errorf("%w: unsupported file extension", ErrInvalidInput)
	}

	storageKey, _, _, err := s.Store.Save(ctx, ownerID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		FilePath:  storageKey,
		FileType:  fileType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get returns a document by ID for an owner.
func (s *Service) Get(ctx context.Context, ownerID, documentID string) (Document, error) {
	if ownerID == "" {
		return Document{}, errors.New("owner id required")
	}
	return s.Repo.GetByID(ctx, ownerID, documentID)
}

// List returns the owner's documents newest-first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Document, error) {
	if ownerID == "" {
		return nil, errors.New("owner id required")
	}
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

func fileTypeFromName(fileName string) (FileType, bool) {
	idx := strings.LastIndexByte(fileName, '.')
	if idx < 0 || idx == len(fileName)-1 {
		return FileTypeText, true
	}
	return ParseFileType(fileName[idx+1:])
}
