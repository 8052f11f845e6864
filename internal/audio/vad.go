package audio

import (
	"github.com/Vovarama1992/go-utils/logger"
)

const (
	// The segmenter expects mono 16kHz signed 16-bit PCM.
	VADSampleRate = 16000

	frameDurationMS = 30
	frameSamples    = VADSampleRate * frameDurationMS / 1000
	frameBytes      = frameSamples * 2
	frameSeconds    = float64(frameDurationMS) / 1000
)

type SegmentType string

const (
	SegmentSpeech  SegmentType = "speech"
	SegmentSilence SegmentType = "silence"
)

// Segment is one contiguous run of same-class frames.
type Segment struct {
	Start float64     `json:"start"`
	End   float64     `json:"end"`
	Type  SegmentType `json:"type"`
}

// FrameClassifier decides speech vs. silence for one fixed-size PCM frame.
type FrameClassifier interface {
	IsSpeech(frame []byte, sampleRate int) (bool, error)
}

// Segmenter slices raw PCM into 30ms frames and merges consecutive
// same-class frames into ordered, non-overlapping segments.
type Segmenter struct {
	cls FrameClassifier
	log *logger.ZapLogger
}

func NewSegmenter(cls FrameClassifier, log *logger.ZapLogger) *Segmenter {
	return &Segmenter{cls: cls, log: log}
}

// Segments partitions pcm into voice-activity segments. A trailing partial
// frame is discarded. Classifier failure degrades to an empty list rather
// than an error; analysis must survive a broken detector.
func (s *Segmenter) Segments(pcm []byte) []Segment {
	if s.cls == nil || len(pcm) < frameBytes {
		return nil
	}

	var segments []Segment
	var cur *Segment

	for i := 0; i+frameBytes <= len(pcm); i += frameBytes {
		speech, err := s.cls.IsSpeech(pcm[i:i+frameBytes], VADSampleRate)
		if err != nil {
			if s.log != nil {
				s.log.Log(logger.LogEntry{Level: "warn", Message: "vad classify failed", Error: err})
			}
			return nil
		}

		class := SegmentSilence
		if speech {
			class = SegmentSpeech
		}

		offset := float64(i) / float64(VADSampleRate*2)
		if cur == nil || cur.Type != class {
			if cur != nil {
				segments = append(segments, *cur)
			}
			cur = &Segment{Start: offset, Type: class}
		}
		cur.End = offset + frameSeconds
	}

	if cur != nil {
		segments = append(segments, *cur)
	}
	return segments
}

// SpeechRatio is the proportion of totalDuration covered by speech segments.
// With no segments at all the ratio is unknown; 0.5 keeps the quality
// heuristic neutral, matching the service's historical behavior.
func SpeechRatio(segments []Segment, totalDuration float64) float64 {
	if len(segments) == 0 {
		return 0.5
	}
	if totalDuration <= 0 {
		return 0
	}
	var speech float64
	for _, seg := range segments {
		if seg.Type == SegmentSpeech {
			speech += seg.End - seg.Start
		}
	}
	return speech / totalDuration
}
