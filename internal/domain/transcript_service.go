package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

const defaultHistoryLimit = 50

type transcriptService struct {
	repo ports.TranscriptRepo
	log  *logger.ZapLogger
}

func NewTranscriptService(repo ports.TranscriptRepo, log *logger.ZapLogger) ports.TranscriptService {
	return &transcriptService{repo: repo, log: log}
}

// Record persists one transcription. History is a convenience layer:
// a failed insert is logged and the request proceeds unharmed.
func (s *transcriptService) Record(ctx context.Context, rec *ports.TranscriptRecord) {
	if _, err := s.repo.Create(ctx, rec); err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "transcript insert failed", Error: err})
	}
}

func (s *transcriptService) ListRecent(ctx context.Context, limit int) ([]ports.TranscriptRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
