package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htgotts "github.com/hegedustibor/htgo-tts"
)

// GTTSSynthesizer uses the Google Translate TTS endpoint. Needs no
// credentials, which makes it the default provider.
type GTTSSynthesizer struct{}

func NewGTTSSynthesizer() *GTTSSynthesizer {
	return &GTTSSynthesizer{}
}

func (g *GTTSSynthesizer) Name() string { return "gtts" }

func (g *GTTSSynthesizer) Synthesize(ctx context.Context, req Request, outPath string) error {
	lang := req.Voice
	if lang == "" {
		lang = "en"
	}

	speech := htgotts.Speech{
		Folder:   filepath.Dir(outPath),
		Language: lang,
	}

	name := strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))
	written, err := speech.CreateSpeechFile(req.Text, name)
	if err != nil {
		return fmt.Errorf("gtts synthesize: %w", err)
	}
	if written != outPath {
		if err := os.Rename(written, outPath); err != nil {
			return fmt.Errorf("move gtts output: %w", err)
		}
	}
	return nil
}
