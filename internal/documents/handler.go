package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skiracer-backend/internal/shared/server/respond"
)

// maxRequestBytes allows for multipart framing overhead above the file limit;
// the exact ceiling is enforced in the service against the actual bytes.
const maxRequestBytes = MaxFileSize + (1 << 20)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/racers/:racer_id/documents", h.upload)
	rg.POST("/racers/:racer_id/documents/upload-url", h.createUploadURL)
	rg.POST("/racers/:racer_id/documents/:document_id/analyze", h.analyze)
	rg.GET("/racers/:racer_id/documents", h.listForRacer)
	rg.GET("/documents/:document_id", h.get)
	rg.GET("/documents/:document_id/url", h.url)
	rg.DELETE("/documents/:document_id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	racerID := c.Param("racer_id")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	mediaType := fileHeader.Header.Get("Content-Type")
	doc, err := h.Svc.UploadDirect(c.Request.Context(), racerID, fileHeader.Filename, mediaType, file)
	if err != nil {
		h.writeError(c, err, "failed to upload document")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) createUploadURL(c *gin.Context) {
	racerID := c.Param("racer_id")

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Filename = strings.TrimSpace(req.Filename)
	req.MediaType = strings.TrimSpace(req.MediaType)
	if req.Filename == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "filename is required", nil)
		return
	}
	if req.SizeBytes <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "size_bytes must be positive", nil)
		return
	}

	grant, err := h.Svc.CreateUploadURL(c.Request.Context(), racerID, req.Filename, req.MediaType, req.SizeBytes)
	if err != nil {
		h.writeError(c, err, "failed to generate upload url")
		return
	}

	respond.OK(c, UploadURLResponse{
		UploadURL:        grant.UploadURL,
		DocumentID:       grant.DocumentID,
		StorageKey:       grant.StorageKey,
		ExpiresInSeconds: grant.ExpiresInSeconds,
	})
}

func (h *Handler) analyze(c *gin.Context) {
	documentID := c.Param("document_id")

	doc, err := h.Svc.AnalyzeDocument(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to analyze document")
		return
	}

	respond.OK(c, toResponse(doc))
}

func (h *Handler) listForRacer(c *gin.Context) {
	racerID := c.Param("racer_id")

	docs, err := h.Svc.ListDocuments(c.Request.Context(), racerID)
	if err != nil {
		h.writeError(c, err, "failed to list documents")
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	documentID := c.Param("document_id")

	doc, err := h.Svc.GetDocument(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to fetch document")
		return
	}

	respond.OK(c, toResponse(doc))
}

func (h *Handler) url(c *gin.Context) {
	documentID := c.Param("document_id")

	url, expiresIn, err := h.Svc.GetDocumentURL(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to generate download url")
		return
	}

	respond.OK(c, DocumentURLResponse{URL: url, ExpiresInSeconds: expiresIn})
}

func (h *Handler) delete(c *gin.Context) {
	documentID := c.Param("document_id")

	if err := h.Svc.DeleteDocument(c.Request.Context(), documentID); err != nil {
		h.writeError(c, err, "failed to delete document")
		return
	}

	respond.OK(c, gin.H{"message": fmt.Sprintf("Document %s deleted successfully", documentID)})
}

// writeError maps service errors onto response codes: validation and
// not-found are client-facing, storage and record failures are operator-facing.
func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var storageErr *StorageError
	var recordErr *RecordError

	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.As(err, &storageErr):
		respond.Error(c, http.StatusInternalServerError, "storage_error", fallback, nil)
	case errors.As(err, &recordErr):
		respond.Error(c, http.StatusInternalServerError, "record_error", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
