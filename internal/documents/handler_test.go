package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &documents.Service{
		Store: local.New(t.TempDir()),
		Repo:  documents.NewMemoryRepo(),
	}
	handler := documents.NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func TestIngestTextEndpoint(t *testing.T) {
	router := newTestRouter(t, "user-1")

	body := `{"title": "Biology", "content": "cells divide by mitosis"}`
	req := httptest.NewRequest(http.MethodPost, "/ingest/text", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Status     string `json:"status"`
		DocumentID string `json:"document_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Status != "success" || payload.DocumentID == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/documents", nil)
	listResp := httptest.NewRecorder()
	router.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("expected status 200 on list, got %d", listResp.Code)
	}
	var list []documents.DocumentResponse
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].DocumentID != payload.DocumentID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestIngestTextEndpointValidation(t *testing.T) {
	router := newTestRouter(t, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/ingest/text", bytes.NewReader([]byte(`{"title": "No Content"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestIngestFileReferenceEndpoint(t *testing.T) {
	router := newTestRouter(t, "user-1")

	body := `{"title": "Slides", "file_path": "user-1/slides.pdf", "file_type": "pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/ingest/file-reference", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestIngestFileReferenceEndpointRejectsBadType(t *testing.T) {
	router := newTestRouter(t, "user-1")

	body := `{"title": "Archive", "file_path": "user-1/data.tar", "file_type": "tar"}`
	req := httptest.NewRequest(http.MethodPost, "/ingest/file-reference", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestIngestUploadEndpoint(t *testing.T) {
	router := newTestRouter(t, "user-1")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("uploaded study notes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.WriteField("title", "Uploaded Notes"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/ingest/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		DocumentID string `json:"document_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.DocumentID == "" {
		t.Fatalf("expected document_id")
	}
}

func TestDocumentsListIsPerOwner(t *testing.T) {
	repo := documents.NewMemoryRepo()
	svc := &documents.Service{Repo: repo}
	handler := documents.NewHandler(svc)

	buildRouter := func(userID string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("userId", userID)
			c.Next()
		})
		handler.RegisterRoutes(router.Group("/"))
		return router
	}

	ownerRouter := buildRouter("owner-a")
	req := httptest.NewRequest(http.MethodPost, "/ingest/text", bytes.NewReader([]byte(`{"title": "T", "content": "c"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	ownerRouter.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d", resp.Code)
	}

	strangerRouter := buildRouter("owner-b")
	listReq := httptest.NewRequest(http.MethodGet, "/documents", nil)
	listResp := httptest.NewRecorder()
	strangerRouter.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list failed: %d", listResp.Code)
	}
	var list []documents.DocumentResponse
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("stranger must not see foreign documents, got %d", len(list))
	}
}
