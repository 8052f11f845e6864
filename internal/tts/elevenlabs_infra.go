package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

type ElevenLabsSynthesizer struct {
	apiKey  string
	voiceID string
	httpCli *http.Client
}

func NewElevenLabsSynthesizer(apiKey, voiceID string) *ElevenLabsSynthesizer {
	return &ElevenLabsSynthesizer{
		apiKey:  apiKey,
		voiceID: voiceID,
		httpCli: http.DefaultClient,
	}
}

func (e *ElevenLabsSynthesizer) Name() string { return "elevenlabs" }

func (e *ElevenLabsSynthesizer) Synthesize(ctx context.Context, req Request, outPath string) error {
	// short values are language tags, not ElevenLabs voice IDs
	voiceID := e.voiceID
	if len(req.Voice) >= 12 {
		voiceID = req.Voice
	}

	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s", voiceID)
	payload := []byte(fmt.Sprintf(`{"text": %q}`, req.Text))

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("xi-api-key", e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := e.httpCli.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("elevenlabs error: %s", string(b))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
