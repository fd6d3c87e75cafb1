package ports

import (
	"context"
	"io"
)

// FileStore holds policy document attachments. Upload returns the public URL
// of the stored object.
type FileStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
