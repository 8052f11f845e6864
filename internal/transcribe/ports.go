package transcribe

import (
	"context"
	"errors"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

// ErrNoSpeech marks audio the recognizer could parse but not understand.
// The service maps it to a degraded success, never a request failure.
var ErrNoSpeech = errors.New("could not understand audio")

// Engine is one speech-to-text backend.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, filePath, language string) (*ports.Transcription, error)
}
