package audio

import (
	"fmt"

	webrtcvad "github.com/maxhawkins/go-webrtcvad"
)

type webrtcClassifier struct {
	vad *webrtcvad.VAD
}

// NewWebRTCClassifier wraps the WebRTC voice-activity detector.
// Aggressiveness runs 0 (permissive) to 3 (strict).
func NewWebRTCClassifier(aggressiveness int) (FrameClassifier, error) {
	vad, err := webrtcvad.New()
	if err != nil {
		return nil, fmt.Errorf("init webrtc vad: %w", err)
	}
	if err := vad.SetMode(aggressiveness); err != nil {
		return nil, fmt.Errorf("set vad mode: %w", err)
	}
	return &webrtcClassifier{vad: vad}, nil
}

func (c *webrtcClassifier) IsSpeech(frame []byte, sampleRate int) (bool, error) {
	return c.vad.Process(sampleRate, frame)
}
