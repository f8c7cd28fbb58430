package object

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrPresignUnsupported is returned by stores that cannot mint signed URLs.
var ErrPresignUnsupported = errors.New("presigned urls are not supported by this store")

// ObjectStore defines the contract for saving and retrieving binary objects.
// The storage key is chosen by the caller and treated as opaque here.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
