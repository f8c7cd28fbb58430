package documents

import "time"

// Document lifecycle states. Direct uploads are created complete; presigned
// uploads stay pending until an analyze call succeeds.
const (
	StatusPending  = "pending"
	StatusComplete = "complete"
)

// Document represents one uploaded media asset and its analysis outcome.
// StorageKey is opaque outside the object store and never changes after
// creation.
type Document struct {
	ID         string
	RacerID    string
	Filename   string
	StorageKey string
	MediaType  string
	SizeBytes  int64
	Analysis   *string
	Status     string
	UploadedAt time.Time
}
