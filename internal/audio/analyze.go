package audio

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Analysis is the response shape of the audio analysis endpoint.
type Analysis struct {
	Duration      float64   `json:"duration"`
	SampleRate    int       `json:"sample_rate"`
	Channels      int       `json:"channels"`
	NoiseLevel    float64   `json:"noise_level"`
	SpeechQuality string    `json:"speech_quality"`
	VADSegments   []Segment `json:"vad_segments"`
}

// Analyzer computes audio metrics for an uploaded file: container
// properties, a spectral-centroid noise proxy, voice-activity segments
// and the derived quality label.
type Analyzer struct {
	ff  *FFmpeg
	seg *Segmenter
	log *logger.ZapLogger
}

func NewAnalyzer(ff *FFmpeg, seg *Segmenter, log *logger.ZapLogger) *Analyzer {
	return &Analyzer{ff: ff, seg: seg, log: log}
}

func (a *Analyzer) Analyze(ctx context.Context, path string) (*Analysis, error) {
	wavPath := path
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		converted, err := a.ff.ConvertToWAV(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("convert upload: %w", err)
		}
		defer os.Remove(converted)
		wavPath = converted
	}

	samples, sampleRate, channels, duration, err := decodeWAV(wavPath)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	noiseLevel := spectralCentroidMean(samples, sampleRate)

	// Segmenter input is fixed-format PCM; extraction failure degrades to
	// an empty segment list, same as a broken classifier.
	var segments []Segment
	pcm, err := a.ff.ExtractPCM(ctx, wavPath, VADSampleRate)
	if err != nil {
		a.log.Log(logger.LogEntry{Level: "warn", Message: "pcm extract for vad failed", Error: err})
	} else {
		segments = a.seg.Segments(pcm)
	}

	return &Analysis{
		Duration:      duration,
		SampleRate:    sampleRate,
		Channels:      channels,
		NoiseLevel:    noiseLevel,
		SpeechQuality: AssessQuality(noiseLevel, SpeechRatio(segments, duration)),
		VADSegments:   segments,
	}, nil
}

// decodeWAV returns normalized mono samples plus container properties.
func decodeWAV(path string) ([]float64, int, int, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, 0, err
	}
	if buf == nil || buf.Format == nil {
		return nil, 0, 0, 0, fmt.Errorf("no pcm data")
	}

	sampleRate := buf.Format.SampleRate
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	scale := 1.0
	if dec.BitDepth > 1 {
		scale = float64(int(1) << (dec.BitDepth - 1))
	}

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		samples[i] = sum / float64(channels) / scale
	}

	duration := 0.0
	if sampleRate > 0 {
		duration = float64(frames) / float64(sampleRate)
	}
	return samples, sampleRate, channels, duration, nil
}

const (
	centroidFrame = 2048
	centroidHop   = 512
)

// spectralCentroidMean is a crude noise proxy: the mean, over hopped
// frames, of the magnitude-weighted average frequency in Hz.
func spectralCentroidMean(samples []float64, sampleRate int) float64 {
	if len(samples) == 0 || sampleRate <= 0 {
		return 0
	}

	fft := fourier.NewFFT(centroidFrame)
	window := make([]float64, centroidFrame)

	var total float64
	var frames int

	step := func(frame []float64) {
		for i := range window {
			if i < len(frame) {
				// Hann window
				w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(centroidFrame-1)))
				window[i] = frame[i] * w
			} else {
				window[i] = 0
			}
		}
		coeffs := fft.Coefficients(nil, window)
		var num, den float64
		for i, c := range coeffs {
			mag := cmplx.Abs(c)
			num += fft.Freq(i) * float64(sampleRate) * mag
			den += mag
		}
		if den > 0 {
			total += num / den
			frames++
		}
	}

	if len(samples) < centroidFrame {
		step(samples)
	} else {
		for start := 0; start+centroidFrame <= len(samples); start += centroidHop {
			step(samples[start : start+centroidFrame])
		}
	}

	if frames == 0 {
		return 0
	}
	return total / float64(frames)
}
