package generations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/llm"
	"edubot-backend/internal/quota"
	"edubot-backend/internal/shared/server/middleware"
	"edubot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate/", h.generate)
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
}

type generateRequest struct {
	DocumentID     string `json:"document_id"`
	GenerationType string `json:"type"`
}

func (h *Handler) generate(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.DocumentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document_id is required", nil)
		return
	}

	mode, err := llm.ParseMode(req.GenerationType)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_generation_type", "type must be one of flashcards, quiz, deep-dive", nil)
		return
	}

	rec, err := h.Svc.Generate(c.Request.Context(), ownerID, req.DocumentID, mode)
	if err != nil {
		var parseErr *ParseError
		switch {
		case errors.Is(err, quota.ErrQuotaExceeded):
			respond.Error(c, http.StatusTooManyRequests, "quota_exceeded", "daily generation limit reached", nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrNoContent):
			respond.Error(c, http.StatusBadRequest, "no_content", "document has no content to process", nil)
		case errors.Is(err, llm.ErrInvalidMode):
			respond.Error(c, http.StatusBadRequest, "invalid_generation_type", "unknown generation type", nil)
		case errors.As(err, &parseErr):
			respond.Error(c, http.StatusInternalServerError, "model_error", "model returned an unparseable response", nil)
		case errors.Is(err, ErrModelFailure):
			respond.Error(c, http.StatusInternalServerError, "model_error", "model invocation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "generation failed", nil)
		}
		return
	}

	c.Set("generationId", rec.ID)
	// The persisted record is the response body, mirroring the insert.
	respond.OK(c, rec)
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	generationID := c.Param("id")
	if generationID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "generation id is required", nil)
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), ownerID, generationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch generation", nil)
		}
		return
	}

	respond.OK(c, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recs, err := h.Svc.List(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}

	resp := make([]GenerationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.OK(c, resp)
}
