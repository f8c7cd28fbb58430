package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID         string    `json:"id"`
	RacerID    string    `json:"racer_id"`
	Filename   string    `json:"filename"`
	MediaType  string    `json:"media_type"`
	SizeBytes  int64     `json:"size_bytes"`
	Analysis   *string   `json:"analysis"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadURLRequest is the body of the presigned upload-url endpoint.
type UploadURLRequest struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// UploadURLResponse returns the signed PUT URL and the pending record's ID.
type UploadURLResponse struct {
	UploadURL        string `json:"upload_url"`
	DocumentID       string `json:"document_id"`
	StorageKey       string `json:"storage_key"`
	ExpiresInSeconds int64  `json:"expires_in"`
}

// DocumentURLResponse returns a signed GET URL for viewing the media.
type DocumentURLResponse struct {
	URL              string `json:"url"`
	ExpiresInSeconds int64  `json:"expires_in"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		RacerID:    doc.RacerID,
		Filename:   doc.Filename,
		MediaType:  doc.MediaType,
		SizeBytes:  doc.SizeBytes,
		Analysis:   doc.Analysis,
		Status:     doc.Status,
		UploadedAt: doc.UploadedAt,
	}
}
