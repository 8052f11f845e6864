package transcribe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/audio"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/notify"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

// Service dispatches transcription requests to whichever engine the caller
// named. Engines left nil (unconfigured credentials) fall through to the
// fallback recognizer.
type Service struct {
	openai   Engine
	deepgram Engine
	whisper  Engine
	fallback Engine

	ff      *audio.FFmpeg
	history ports.TranscriptService
	archive ports.ArchiveService
	errSvc  *notify.Service
	log     *logger.ZapLogger
}

func NewService(
	openaiEng Engine,
	deepgramEng Engine,
	whisperEng Engine,
	fallbackEng Engine,
	ff *audio.FFmpeg,
	history ports.TranscriptService,
	archive ports.ArchiveService,
	errSvc *notify.Service,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		openai:   openaiEng,
		deepgram: deepgramEng,
		whisper:  whisperEng,
		fallback: fallbackEng,
		ff:       ff,
		history:  history,
		archive:  archive,
		errSvc:   errSvc,
		log:      log,
	}
}

func (s *Service) Transcribe(ctx context.Context, filePath, filename string, opts ports.TranscribeOptions) (*ports.Transcription, error) {
	procPath := filePath
	if opts.EnableNoiseReduction {
		enhanced, err := s.ff.Denoise(ctx, filePath)
		if err != nil {
			// conditioning is best effort, transcribe the original
			s.log.Log(logger.LogEntry{Level: "warn", Message: "denoise failed, using raw audio", Error: err})
		} else {
			defer os.Remove(enhanced)
			procPath = enhanced
		}
	}

	eng := s.pick(opts.Provider)
	res, err := eng.Transcribe(ctx, procPath, opts.Language)
	if err != nil {
		if !errors.Is(err, ErrNoSpeech) {
			s.errSvc.Notify(ctx, err, "transcription via "+eng.Name())
			return nil, fmt.Errorf("transcribe with %s: %w", eng.Name(), err)
		}
		res = &ports.Transcription{
			Language: opts.Language,
			Metadata: map[string]any{
				"provider": eng.Name(),
				"error":    "could not understand audio",
			},
		}
	}

	if res.Language == "" {
		res.Language = opts.Language
	}
	if res.Metadata == nil {
		res.Metadata = map[string]any{"provider": eng.Name()}
	}
	if res.Duration == 0 {
		if d, derr := s.ff.Duration(ctx, filePath); derr == nil {
			res.Duration = d
		}
	}

	if opts.EnableSpeakerDetection && res.Text != "" {
		res.SpeakerSegments = splitSpeakers(res.Text)
	}

	audioURL := s.archiveUpload(ctx, filePath, filename, res)
	s.recordHistory(ctx, eng.Name(), filename, audioURL, opts, res)

	return res, nil
}

// Availability reports which engines were configured, for the health endpoint.
func (s *Service) Availability() map[string]bool {
	return map[string]bool{
		"openai_whisper": s.openai != nil,
		"deepgram":       s.deepgram != nil,
		"whisper_server": s.whisper != nil,
		"web_speech":     s.fallback != nil,
	}
}

func (s *Service) pick(provider string) Engine {
	switch provider {
	case "openai-whisper":
		if s.openai != nil {
			return s.openai
		}
	case "deepgram":
		if s.deepgram != nil {
			return s.deepgram
		}
	case "whisper":
		if s.whisper != nil {
			return s.whisper
		}
	}
	return s.fallback
}

// archiveUpload stores the original upload in S3 when a bucket is wired.
// Failures never affect the transcription outcome.
func (s *Service) archiveUpload(ctx context.Context, filePath, filename string, res *ports.Transcription) string {
	if s.archive == nil {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "archive open failed", Error: err})
		return ""
	}
	defer f.Close()

	url, err := s.archive.SaveAudio(ctx, f, filename, "audio/wav")
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "archive upload failed", Error: err})
		return ""
	}
	res.Metadata["audio_url"] = url
	return url
}

func (s *Service) recordHistory(ctx context.Context, provider, filename, audioURL string, opts ports.TranscribeOptions, res *ports.Transcription) {
	if s.history == nil {
		return
	}
	rec := &ports.TranscriptRecord{
		Provider:   provider,
		Language:   res.Language,
		Text:       res.Text,
		Confidence: res.Confidence,
		Duration:   res.Duration,
		Filename:   filename,
	}
	if audioURL != "" {
		rec.AudioURL = &audioURL
	}
	s.history.Record(ctx, rec)
}

// splitSpeakers is placeholder diarization: long transcripts are halved
// across two fixed windows. Real diarization needs a dedicated model.
func splitSpeakers(text string) []ports.SpeakerSegment {
	runes := []rune(text)
	if len(runes) <= 100 {
		return nil
	}
	half := len(runes) / 2
	return []ports.SpeakerSegment{
		{Speaker: "Speaker 1", Start: 0, End: 10, Text: string(runes[:half])},
		{Speaker: "Speaker 2", Start: 10, End: 20, Text: string(runes[half:])},
	}
}
