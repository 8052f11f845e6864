package transcribe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/audio"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/notify"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

type fakeEngine struct {
	name   string
	result *ports.Transcription
	err    error
	calls  int
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) Transcribe(ctx context.Context, filePath, language string) (*ports.Transcription, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	return &res, nil
}

func okEngine(name, text string) *fakeEngine {
	return &fakeEngine{
		name: name,
		result: &ports.Transcription{
			Text:       text,
			Confidence: 0.9,
			Language:   "en",
			Duration:   1.5,
			Metadata:   map[string]any{"provider": name},
		},
	}
}

func newTestService(openaiEng, deepgramEng, whisperEng, fallbackEng Engine) *Service {
	return NewService(
		openaiEng, deepgramEng, whisperEng, fallbackEng,
		audio.NewFFmpeg("ffmpeg", "ffprobe"),
		nil, nil,
		notify.NewService(nil),
		nil,
	)
}

func noConditioning() ports.TranscribeOptions {
	return ports.TranscribeOptions{Language: "en", EnableNoiseReduction: false}
}

func TestDispatchByProviderName(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"openai-whisper", "openai-whisper"},
		{"deepgram", "deepgram"},
		{"whisper", "whisper"},
		{"", "web-speech"},
		{"no-such-provider", "web-speech"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			openaiEng := okEngine("openai-whisper", "a")
			deepgramEng := okEngine("deepgram", "b")
			whisperEng := okEngine("whisper", "c")
			fallbackEng := okEngine("web-speech", "d")
			svc := newTestService(openaiEng, deepgramEng, whisperEng, fallbackEng)

			opts := noConditioning()
			opts.Provider = tt.provider
			res, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", opts)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.Metadata["provider"])
		})
	}
}

func TestUnconfiguredProviderFallsThrough(t *testing.T) {
	fallbackEng := okEngine("web-speech", "fallback text")
	svc := newTestService(nil, nil, nil, fallbackEng)

	opts := noConditioning()
	opts.Provider = "openai-whisper"
	res, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", opts)
	require.NoError(t, err)

	assert.Equal(t, "fallback text", res.Text)
	assert.Equal(t, 1, fallbackEng.calls)
}

func TestNoSpeechYieldsDegradedResult(t *testing.T) {
	eng := &fakeEngine{name: "web-speech", err: fmt.Errorf("web speech: %w", ErrNoSpeech)}
	svc := newTestService(nil, nil, nil, eng)

	res, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", noConditioning())
	require.NoError(t, err, "unrecognized audio must not be an error")

	assert.Empty(t, res.Text)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "en", res.Language)
	assert.Equal(t, "could not understand audio", res.Metadata["error"])
}

func TestEngineFailurePropagates(t *testing.T) {
	eng := &fakeEngine{name: "deepgram", err: errors.New("connection refused")}
	svc := newTestService(nil, eng, nil, okEngine("web-speech", "x"))

	opts := noConditioning()
	opts.Provider = "deepgram"
	_, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deepgram")
}

func TestSpeakerDetectionSplitsLongTranscripts(t *testing.T) {
	long := strings.Repeat("words and more words ", 10)
	eng := okEngine("web-speech", long)
	svc := newTestService(nil, nil, nil, eng)

	opts := noConditioning()
	opts.EnableSpeakerDetection = true
	res, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", opts)
	require.NoError(t, err)

	require.Len(t, res.SpeakerSegments, 2)
	assert.Equal(t, "Speaker 1", res.SpeakerSegments[0].Speaker)
	assert.Equal(t, "Speaker 2", res.SpeakerSegments[1].Speaker)
	assert.Equal(t, long, res.SpeakerSegments[0].Text+res.SpeakerSegments[1].Text)
}

func TestSpeakerDetectionSkipsShortTranscripts(t *testing.T) {
	eng := okEngine("web-speech", "short answer")
	svc := newTestService(nil, nil, nil, eng)

	opts := noConditioning()
	opts.EnableSpeakerDetection = true
	res, err := svc.Transcribe(context.Background(), "/tmp/in.wav", "in.wav", opts)
	require.NoError(t, err)

	assert.Empty(t, res.SpeakerSegments)
}

func TestAvailability(t *testing.T) {
	svc := newTestService(okEngine("openai-whisper", "a"), nil, nil, okEngine("web-speech", "d"))

	got := svc.Availability()
	assert.True(t, got["openai_whisper"])
	assert.False(t, got["deepgram"])
	assert.False(t, got["whisper_server"])
	assert.True(t, got["web_speech"])
}
