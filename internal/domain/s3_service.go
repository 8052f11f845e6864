package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

type archiveService struct {
	client ports.S3Client
}

func NewArchiveService(client ports.S3Client) ports.ArchiveService {
	return &archiveService{client: client}
}

// ObjectKey is the bucket path: date prefix plus a uuid to keep repeated
// filenames from colliding.
func (s *archiveService) ObjectKey(filename string) string {
	date := time.Now().Format("2006-01-02")
	clean := filepath.Base(filename)
	return fmt.Sprintf("%s/%s-%s", date, uuid.NewString(), clean)
}

func (s *archiveService) SaveAudio(ctx context.Context, file io.Reader, filename, contentType string) (string, error) {
	if filename == "" {
		filename = "upload.wav"
	}

	key := s.ObjectKey(filename)

	// size = -1, the S3 client figures it out
	return s.client.PutObject(ctx, key, file, -1, contentType)
}
