package tts

import "context"

// Request describes one synthesis call.
type Request struct {
	Text     string  `json:"text"`
	Voice    string  `json:"voice"`
	Provider string  `json:"provider"`
	Speed    float64 `json:"speed"`
	Pitch    float64 `json:"pitch"`
}

// Synthesizer converts text to speech and writes the audio to outPath.
type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, req Request, outPath string) error
}
