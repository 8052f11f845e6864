package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClassifier replays a fixed classification per frame.
type scriptedClassifier struct {
	script []bool
	calls  int
	err    error
}

func (c *scriptedClassifier) IsSpeech(frame []byte, sampleRate int) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	speech := false
	if c.calls < len(c.script) {
		speech = c.script[c.calls]
	}
	c.calls++
	return speech, nil
}

func pcmOfFrames(n int) []byte {
	return make([]byte, n*frameBytes)
}

func TestSegmenterEmptyInput(t *testing.T) {
	seg := NewSegmenter(&scriptedClassifier{}, nil)

	assert.Nil(t, seg.Segments(nil))
	assert.Nil(t, seg.Segments([]byte{}))
}

func TestSegmenterShortInputDiscarded(t *testing.T) {
	seg := NewSegmenter(&scriptedClassifier{script: []bool{true}}, nil)

	// less than one full frame
	assert.Nil(t, seg.Segments(make([]byte, frameBytes-2)))
}

func TestSegmenterFullSecondOfSilence(t *testing.T) {
	cls := &scriptedClassifier{script: make([]bool, 64)} // all silence
	seg := NewSegmenter(cls, nil)

	// 1s @ 16kHz s16 mono = 32000 bytes = 33 full frames + trailing partial
	segments := seg.Segments(make([]byte, 32000))

	require.Len(t, segments, 1)
	assert.Equal(t, SegmentSilence, segments[0].Type)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.InDelta(t, 0.99, segments[0].End, 0.001)
}

func TestSegmenterMergesAndSplits(t *testing.T) {
	cls := &scriptedClassifier{script: []bool{false, false, true, true, true, false}}
	seg := NewSegmenter(cls, nil)

	segments := seg.Segments(pcmOfFrames(6))

	require.Len(t, segments, 3)
	assert.Equal(t, SegmentSilence, segments[0].Type)
	assert.Equal(t, SegmentSpeech, segments[1].Type)
	assert.Equal(t, SegmentSilence, segments[2].Type)

	assert.InDelta(t, 0.0, segments[0].Start, 1e-9)
	assert.InDelta(t, 0.06, segments[0].End, 1e-9)
	assert.InDelta(t, 0.06, segments[1].Start, 1e-9)
	assert.InDelta(t, 0.15, segments[1].End, 1e-9)
	assert.InDelta(t, 0.15, segments[2].Start, 1e-9)
	assert.InDelta(t, 0.18, segments[2].End, 1e-9)
}

func TestSegmenterOrderedNonOverlapping(t *testing.T) {
	script := []bool{true, false, true, true, false, false, true, false, true, false,
		true, true, true, false, true, false, false, true, false, true}
	cls := &scriptedClassifier{script: script}
	seg := NewSegmenter(cls, nil)

	segments := seg.Segments(pcmOfFrames(len(script)))
	require.NotEmpty(t, segments)

	for i, s := range segments {
		assert.Less(t, s.Start, s.End, "segment %d must have positive length", i)
		if i > 0 {
			prev := segments[i-1]
			assert.GreaterOrEqual(t, s.Start, prev.End, "segment %d overlaps previous", i)
			assert.InDelta(t, prev.End, s.Start, 1e-9, "segments must be contiguous")
			assert.NotEqual(t, prev.Type, s.Type, "adjacent segments must alternate class")
		}
	}

	last := segments[len(segments)-1]
	assert.InDelta(t, float64(len(script))*frameSeconds, last.End, 1e-9)
}

func TestSegmenterClassifierFailureDegrades(t *testing.T) {
	cls := &scriptedClassifier{err: errors.New("detector broken")}
	seg := NewSegmenter(cls, nil)

	assert.Nil(t, seg.Segments(pcmOfFrames(4)))
}

func TestSegmenterTrailingPartialFrameDropped(t *testing.T) {
	cls := &scriptedClassifier{script: []bool{true, true}}
	seg := NewSegmenter(cls, nil)

	pcm := append(pcmOfFrames(2), make([]byte, frameBytes/2)...)
	segments := seg.Segments(pcm)

	require.Len(t, segments, 1)
	assert.InDelta(t, 2*frameSeconds, segments[0].End, 1e-9)
	assert.Equal(t, 2, cls.calls)
}

func TestSpeechRatio(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 0.3, Type: SegmentSpeech},
		{Start: 0.3, End: 0.6, Type: SegmentSilence},
		{Start: 0.6, End: 1.0, Type: SegmentSpeech},
	}

	assert.InDelta(t, 0.7, SpeechRatio(segments, 1.0), 1e-9)
	assert.Equal(t, 0.5, SpeechRatio(nil, 1.0))
	assert.Equal(t, 0.0, SpeechRatio(segments, 0))
}
