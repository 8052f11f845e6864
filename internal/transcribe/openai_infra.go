package transcribe

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

type OpenAIEngine struct {
	client *openai.Client
}

func NewOpenAIEngine(client *openai.Client) *OpenAIEngine {
	return &OpenAIEngine{client: client}
}

func (e *OpenAIEngine) Name() string { return "openai-whisper" }

func (e *OpenAIEngine) Transcribe(ctx context.Context, filePath, language string) (*ports.Transcription, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if language != "" && language != "auto" {
		req.Language = language
	}

	resp, err := e.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	lang := resp.Language
	if lang == "" {
		lang = language
	}

	return &ports.Transcription{
		Text: resp.Text,
		// the API reports no score
		Confidence: 0.9,
		Language:   lang,
		Duration:   resp.Duration,
		Metadata: map[string]any{
			"provider": "openai-whisper",
			"model":    "whisper-1",
		},
	}, nil
}
