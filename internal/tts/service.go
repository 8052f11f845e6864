package tts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/cache"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/notify"
)

const cacheTTL = 24 * time.Hour

// Service dispatches synthesis requests by provider name. Unknown or
// unconfigured providers fall through to the credential-free default.
type Service struct {
	gtts       Synthesizer
	openai     Synthesizer
	elevenlabs Synthesizer

	cache  cache.Cache
	errSvc *notify.Service
	log    *logger.ZapLogger
}

func NewService(
	gtts Synthesizer,
	openaiSyn Synthesizer,
	elevenlabsSyn Synthesizer,
	audioCache cache.Cache,
	errSvc *notify.Service,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		gtts:       gtts,
		openai:     openaiSyn,
		elevenlabs: elevenlabsSyn,
		cache:      audioCache,
		errSvc:     errSvc,
		log:        log,
	}
}

// Synthesize returns MP3 bytes for the request, serving repeats from cache.
func (s *Service) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("tts: empty text")
	}
	if req.Voice == "" {
		req.Voice = "en"
	}
	if req.Speed <= 0 {
		req.Speed = 1.0
	}
	if req.Pitch <= 0 {
		req.Pitch = 1.0
	}

	syn := s.pick(req.Provider)
	key := cacheKey(syn.Name(), req)

	if s.cache != nil {
		var cached []byte
		if err := s.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	outPath := filepath.Join(os.TempDir(), uuid.NewString()+".mp3")
	defer os.Remove(outPath)

	if err := syn.Synthesize(ctx, req, outPath); err != nil {
		s.errSvc.Notify(ctx, err, "tts via "+syn.Name())
		return nil, fmt.Errorf("synthesize with %s: %w", syn.Name(), err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read synthesized audio: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, data, cacheTTL); err != nil {
			s.log.Log(logger.LogEntry{Level: "warn", Message: "tts cache write failed", Error: err})
		}
	}
	return data, nil
}

// Availability reports which synthesizers were configured, for the health endpoint.
func (s *Service) Availability() map[string]bool {
	return map[string]bool{
		"gtts":       s.gtts != nil,
		"openai_tts": s.openai != nil,
		"elevenlabs": s.elevenlabs != nil,
	}
}

func (s *Service) pick(provider string) Synthesizer {
	switch provider {
	case "openai":
		if s.openai != nil {
			return s.openai
		}
	case "elevenlabs":
		if s.elevenlabs != nil {
			return s.elevenlabs
		}
	}
	return s.gtts
}

func cacheKey(provider string, req Request) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%.2f|%.2f|%s",
		provider, req.Voice, req.Speed, req.Pitch, req.Text)))
	return "tts:" + hex.EncodeToString(sum[:])
}
