package ports

import (
	"context"
	"io"
)

type AttachmentStore interface {
	// Save stores the content and returns the URL it can be fetched from.
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
