package notify

import (
	"context"
	"log"
)

// Service fans error reports out to the configured channel. A nil infra
// degrades to logging only, so callers never need to branch.
type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, err error, details string) {
	if s == nil || s.infra == nil {
		log.Printf("[notify] %s: %v", details, err)
		return
	}
	if sendErr := s.infra.Notify(ctx, err, details); sendErr != nil {
		log.Printf("[notify] %s: %v (report failed: %v)", details, err, sendErr)
	}
}
