package ports

import (
	"context"
	"time"
)

// SpeakerSegment attributes a slice of the transcript to one speaker.
type SpeakerSegment struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Transcription is the common result shape every STT engine is normalized into.
type Transcription struct {
	Text            string           `json:"text"`
	Confidence      float64          `json:"confidence"`
	Language        string           `json:"language"`
	Duration        float64          `json:"duration"`
	SpeakerSegments []SpeakerSegment `json:"speaker_segments,omitempty"`
	Metadata        map[string]any   `json:"metadata"`
}

type TranscribeOptions struct {
	Provider               string
	Language               string
	EnableSpeakerDetection bool
	EnableNoiseReduction   bool
}

type TranscriptionService interface {
	Transcribe(ctx context.Context, filePath, filename string, opts TranscribeOptions) (*Transcription, error)
	Availability() map[string]bool
}

// TranscriptRecord is one persisted history row.
type TranscriptRecord struct {
	ID         int64     `json:"id"`
	Provider   string    `json:"provider"`
	Language   string    `json:"language"`
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence"`
	Duration   float64   `json:"duration"`
	Filename   string    `json:"filename"`
	AudioURL   *string   `json:"audio_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type TranscriptRepo interface {
	Create(ctx context.Context, rec *TranscriptRecord) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]TranscriptRecord, error)
}

type TranscriptService interface {
	Record(ctx context.Context, rec *TranscriptRecord)
	ListRecent(ctx context.Context, limit int) ([]TranscriptRecord, error)
}
