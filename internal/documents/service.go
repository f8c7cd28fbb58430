package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"skiracer-backend/internal/analyzer"
	"skiracer-backend/internal/shared/metrics"
	"skiracer-backend/internal/shared/storage/object"
	"skiracer-backend/internal/shared/telemetry"
)

// presignExpiry bounds both upload and download URLs.
const presignExpiry = 15 * time.Minute

const analyzerUnconfiguredText = "Analysis unavailable: the analysis service is not configured. " +
	"Configure AWS credentials to enable AI-powered ski form analysis."

// Service orchestrates document ingestion: validation, storage, analysis,
// and record bookkeeping, for both direct and presigned upload modes. It is
// stateless and safe for concurrent use.
type Service struct {
	Repo     DocumentsRepo
	Store    object.ObjectStore
	Analyzer analyzer.Analyzer
}

// UploadGrant is the result of CreateUploadURL.
type UploadGrant struct {
	UploadURL        string
	DocumentID       string
	StorageKey       string
	ExpiresInSeconds int64
}

// UploadDirect validates, stores, analyzes, and records a file in one call.
// Analysis failures degrade to placeholder text; they never fail the upload.
func (s *Service) UploadDirect(ctx context.Context, racerID, filename, mediaType string, r io.Reader) (Document, error) {
	if err := ValidateFile(filename, mediaType, 0); err != nil {
		return Document{}, err
	}

	// Size is enforced against actual bytes, not the client's declaration.
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return Document{}, fmt.Errorf("unable to read file: %w", ErrInvalidInput)
	}
	if int64(len(data)) > MaxFileSize {
		return Document{}, sizeError(int64(len(data)))
	}

	key := newStorageKey(racerID, filename)
	if _, err := s.Store.Put(ctx, key, mediaType, bytes.NewReader(data)); err != nil {
		return Document{}, &StorageError{Op: "put", Key: key, Err: err}
	}

	analysis := s.resolveAnalysis(ctx, data, mediaType, filename)

	doc := Document{
		ID:         uuid.NewString(),
		RacerID:    racerID,
		Filename:   filename,
		StorageKey: key,
		MediaType:  CanonicalMediaType(mediaType),
		SizeBytes:  int64(len(data)),
		Analysis:   &analysis,
		Status:     StatusComplete,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		// An object with no record is unreachable by any other path, so this
		// is the one case where storage is rolled back.
		if delErr := s.Store.Delete(ctx, key); delErr != nil {
			telemetry.Warn("documents.orphan_cleanup.failed", map[string]any{
				"key": key,
				"err": delErr.Error(),
			})
		}
		return Document{}, &RecordError{Op: "create", Err: err}
	}

	metrics.IncUpload()
	return doc, nil
}

// CreateUploadURL validates metadata, mints a signed PUT URL, and records a
// pending document. The byte transfer happens out-of-band between the client
// and the storage backend.
func (s *Service) CreateUploadURL(ctx context.Context, racerID, filename, mediaType string, sizeBytes int64) (UploadGrant, error) {
	// The server never sees the bytes, so only the declared size can be checked.
	if err := ValidateFile(filename, mediaType, sizeBytes); err != nil {
		return UploadGrant{}, err
	}

	key := newStorageKey(racerID, filename)
	uploadURL, err := s.Store.PresignPut(ctx, key, mediaType, presignExpiry)
	if err != nil {
		return UploadGrant{}, &StorageError{Op: "presign put", Key: key, Err: err}
	}

	doc := Document{
		ID:         uuid.NewString(),
		RacerID:    racerID,
		Filename:   filename,
		StorageKey: key,
		MediaType:  CanonicalMediaType(mediaType),
		SizeBytes:  sizeBytes,
		Analysis:   nil,
		Status:     StatusPending,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return UploadGrant{}, &RecordError{Op: "create", Err: err}
	}

	metrics.IncUpload()
	return UploadGrant{
		UploadURL:        uploadURL,
		DocumentID:       doc.ID,
		StorageKey:       key,
		ExpiresInSeconds: int64(presignExpiry.Seconds()),
	}, nil
}

// AnalyzeDocument fetches the stored object, runs the analysis, and marks the
// record complete. It is idempotent: a later call supersedes the stored text.
// A missing object (client never finished the upload) is a StorageError the
// caller may retry after the upload completes.
func (s *Service) AnalyzeDocument(ctx context.Context, documentID string) (Document, error) {
	doc, err := s.getByID(ctx, documentID)
	if err != nil {
		return Document{}, err
	}

	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return Document{}, &StorageError{Op: "get", Key: doc.StorageKey, Err: err}
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return Document{}, &StorageError{Op: "read", Key: doc.StorageKey, Err: err}
	}

	analysis := s.resolveAnalysis(ctx, data, doc.MediaType, doc.Filename)

	if err := s.Repo.UpdateAnalysis(ctx, doc.ID, analysis, StatusComplete); err != nil {
		// No rollback: the object and pending record stay put so an operator
		// can retry the analyze call.
		return Document{}, &RecordError{Op: "update", Err: err}
	}

	doc.Analysis = &analysis
	doc.Status = StatusComplete
	return doc, nil
}

// GetDocumentURL mints a fresh signed GET URL for viewing the media.
func (s *Service) GetDocumentURL(ctx context.Context, documentID string) (string, int64, error) {
	doc, err := s.getByID(ctx, documentID)
	if err != nil {
		return "", 0, err
	}

	url, err := s.Store.PresignGet(ctx, doc.StorageKey, presignExpiry)
	if err != nil {
		return "", 0, &StorageError{Op: "presign get", Key: doc.StorageKey, Err: err}
	}
	return url, int64(presignExpiry.Seconds()), nil
}

// ListDocuments returns a racer's documents, most recent upload first.
func (s *Service) ListDocuments(ctx context.Context, racerID string) ([]Document, error) {
	docs, err := s.Repo.ListByRacer(ctx, racerID)
	if err != nil {
		return nil, &RecordError{Op: "list", Err: err}
	}
	return docs, nil
}

// GetDocument returns a document by ID.
func (s *Service) GetDocument(ctx context.Context, documentID string) (Document, error) {
	return s.getByID(ctx, documentID)
}

// DeleteDocument removes the stored object best-effort, then the record.
// The record is authoritative: it is removed even when the storage delete
// fails.
func (s *Service) DeleteDocument(ctx context.Context, documentID string) error {
	doc, err := s.getByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
		telemetry.Warn("documents.storage_delete.failed", map[string]any{
			"document_id": doc.ID,
			"key":         doc.StorageKey,
			"err":         err.Error(),
		})
	}

	if err := s.Repo.Delete(ctx, doc.ID); err != nil {
		// A concurrent delete winning the race reads as not found.
		if isNotFound(err) {
			return fmt.Errorf("document not found with id %s: %w", documentID, ErrNotFound)
		}
		return &RecordError{Op: "delete", Err: err}
	}
	return nil
}

// resolveAnalysis runs the analyzer and substitutes degraded placeholder text
// on every failure; the upload has already succeeded and must not be rolled
// back for an analysis problem.
func (s *Service) resolveAnalysis(ctx context.Context, data []byte, mediaType, filename string) string {
	if s.Analyzer == nil || !s.Analyzer.Available() {
		return analyzerUnconfiguredText
	}

	start := metrics.NowMillis()
	text, err := s.Analyzer.Analyze(ctx, data, mediaType, filename)
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - start)
	if err != nil {
		telemetry.Warn("documents.analysis.degraded", map[string]any{
			"filename":   filename,
			"media_type": mediaType,
			"err":        err.Error(),
		})
		metrics.IncAnalysisDegraded()
		return "Analysis unavailable: " + err.Error()
	}

	metrics.IncAnalysisCompleted()
	return text
}

func (s *Service) getByID(ctx context.Context, documentID string) (Document, error) {
	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		if isNotFound(err) {
			return Document{}, fmt.Errorf("document not found with id %s: %w", documentID, ErrNotFound)
		}
		return Document{}, &RecordError{Op: "get", Err: err}
	}
	return doc, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// newStorageKey generates a collision-resistant key; the client filename is
// used only to carry the extension, never for the stored name.
func newStorageKey(racerID, filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = strings.ToLower(filename[idx:])
	}
	return path.Join("documents", racerID, uuid.NewString()+ext)
}
