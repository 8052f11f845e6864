package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

const deepgramListenURL = "https://api.deepgram.com/v1/listen"

type DeepgramEngine struct {
	apiKey string
	client *http.Client
}

func NewDeepgramEngine(apiKey string) *DeepgramEngine {
	return &DeepgramEngine{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (e *DeepgramEngine) Name() string { return "deepgram" }

func (e *DeepgramEngine) Transcribe(ctx context.Context, filePath, language string) (*ports.Transcription, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	q := url.Values{}
	q.Set("model", "nova-2")
	q.Set("smart_format", "true")
	if language != "" && language != "auto" {
		q.Set("language", language)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		deepgramListenURL+"?"+q.Encode(),
		bytes.NewReader(data),
	)
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "audio/wav"
	}
	req.Header.Set("Authorization", "Token "+e.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("deepgram error: %s", body)
	}

	var parsed struct {
		Metadata struct {
			Duration float64 `json:"duration"`
		} `json:"metadata"`
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string  `json:"transcript"`
					Confidence float64 `json:"confidence"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode deepgram: %w", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 ||
		parsed.Results.Channels[0].Alternatives[0].Transcript == "" {
		return nil, fmt.Errorf("deepgram: %w", ErrNoSpeech)
	}

	alt := parsed.Results.Channels[0].Alternatives[0]
	return &ports.Transcription{
		Text:       alt.Transcript,
		Confidence: alt.Confidence,
		Language:   language,
		Duration:   parsed.Metadata.Duration,
		Metadata: map[string]any{
			"provider": "deepgram",
			"model":    "nova-2",
		},
	}, nil
}
