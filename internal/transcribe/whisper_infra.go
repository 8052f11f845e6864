package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

// WhisperServerEngine talks to a self-hosted Whisper ASR HTTP server.
// This stands in for loading the model in-process.
type WhisperServerEngine struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewWhisperServerEngine(baseURL, model string) *WhisperServerEngine {
	if model == "" {
		model = "base"
	}
	return &WhisperServerEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

func (e *WhisperServerEngine) Name() string { return "whisper" }

func (e *WhisperServerEngine) Transcribe(ctx context.Context, filePath, language string) (*ports.Transcription, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio_file", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("task", "transcribe")
	q.Set("output", "json")
	if language != "" && language != "auto" {
		q.Set("language", language)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.baseURL+"/asr?"+q.Encode(),
		&buf,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whisper server request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("whisper server error: %s", body)
	}

	var parsed struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode whisper server: %w", err)
	}

	lang := parsed.Language
	if lang == "" {
		lang = language
	}

	return &ports.Transcription{
		Text: strings.TrimSpace(parsed.Text),
		// estimated; the server reports no score
		Confidence: 0.85,
		Language:   lang,
		Metadata: map[string]any{
			"provider": "whisper",
			"model":    e.model,
		},
	}, nil
}
