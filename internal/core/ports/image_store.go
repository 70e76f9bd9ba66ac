package ports

import (
	"context"
	"io"
)

// ImageStore abstracts the external image host. Upload persists the object
// under key and returns the durable retrieval URL. Uploaded objects are never
// deleted through this interface; a replaced image stays on the host.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error)
}
