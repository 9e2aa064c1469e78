package documents

import (
	"context"
	"errors"
	"testing"
)

func TestIngestTextCreatesTextDocument(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	doc, err := svc.IngestText(context.Background(), "user-1", "Biology", "cells divide")
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected generated id")
	}
	if doc.FileType != FileTypeText {
		t.Fatalf("expected text file type, got %q", doc.FileType)
	}
	if doc.Content != "cells divide" {
		t.Fatalf("content must be stored verbatim, got %q", doc.Content)
	}

	stored, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ID != doc.ID {
		t.Fatalf("document not persisted")
	}
}

func TestIngestTextValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.IngestText(ctx, "user-1", "", "content"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.IngestText(ctx, "user-1", "Title", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing content: expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestFileReferenceNormalizesType(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	doc, err := svc.IngestFileReference(ctx, "user-1", "Slides", "user-1/slides.pdf", "PDF")
	if err != nil {
		t.Fatalf("IngestFileReference: %v", err)
	}
	if doc.FileType != FileTypePDF {
		t.Fatalf("expected pdf, got %q", doc.FileType)
	}
	if doc.Content != "" {
		t.Fatalf("file references must not carry inline content")
	}

	md, err := svc.IngestFileReference(ctx, "user-1", "Readme", "user-1/readme.md", "md")
	if err != nil {
		t.Fatalf("IngestFileReference md: %v", err)
	}
	if md.FileType != FileTypeText {
		t.Fatalf("md should normalize to text, got %q", md.FileType)
	}
}

func TestIngestFileReferenceRejectsUnknownType(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.IngestFileReference(context.Background(), "user-1", "Archive", "user-1/data.tar", "tar")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetIsOwnerScoped(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	doc, err := svc.IngestText(ctx, "owner-a", "Private", "secret")
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}

	if _, err := svc.Get(ctx, "owner-b", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign document must be ErrNotFound, got %v", err)
	}
}

func TestParseFileType(t *testing.T) {
	cases := []struct {
		in   string
		want FileType
		ok   bool
	}{
		{"text", FileTypeText, true},
		{"txt", FileTypeText, true},
		{"md", FileTypeText, true},
		{"pdf", FileTypePDF, true},
		{"PDF", FileTypePDF, true},
		{"png", FileTypeImage, true},
		{"jpeg", FileTypeImage, true},
		{"docx", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseFileType(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseFileType(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseFileType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
