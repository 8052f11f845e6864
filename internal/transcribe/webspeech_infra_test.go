package transcribe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWebSpeechBody(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantText       string
		wantConfidence float64
		wantFound      bool
	}{
		{
			name: "empty preamble then result",
			body: `{"result":[]}
{"result":[{"alternative":[{"transcript":"hello world","confidence":0.92}],"final":true}],"result_index":0}`,
			wantText:       "hello world",
			wantConfidence: 0.92,
			wantFound:      true,
		},
		{
			name:           "confidence omitted",
			body:           `{"result":[{"alternative":[{"transcript":"no score"}]}]}`,
			wantText:       "no score",
			wantConfidence: 0,
			wantFound:      true,
		},
		{
			name:      "nothing recognized",
			body:      `{"result":[]}`,
			wantFound: false,
		},
		{
			name:      "garbage lines skipped",
			body:      "not json\n\n{\"result\":[]}",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, confidence, found := parseWebSpeechBody(strings.NewReader(tt.body))

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantConfidence, confidence)
		})
	}
}
