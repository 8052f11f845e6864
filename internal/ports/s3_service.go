package ports

import (
	"context"
	"io"
)

// ArchiveService stores raw uploads and synthesized audio. Best-effort:
// callers treat an empty URL as "not archived".
type ArchiveService interface {
	ObjectKey(filename string) string
	SaveAudio(ctx context.Context, file io.Reader, filename, contentType string) (string, error)
}
