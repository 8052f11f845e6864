package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestWAV(t *testing.T, sampleRate int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           samples,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())

	return path
}

func sineSamples(freq float64, sampleRate, n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(20000 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}
	return samples
}

func TestDecodeWAV(t *testing.T) {
	const sampleRate = 16000
	path := writeTestWAV(t, sampleRate, sineSamples(440, sampleRate, sampleRate))

	samples, rate, channels, duration, err := decodeWAV(path)
	require.NoError(t, err)

	assert.Equal(t, sampleRate, rate)
	assert.Equal(t, 1, channels)
	assert.InDelta(t, 1.0, duration, 0.01)
	assert.Len(t, samples, sampleRate)

	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s), 1.0, "samples must be normalized")
	}
}

func TestSpectralCentroidMeanTracksToneFrequency(t *testing.T) {
	const sampleRate = 16000

	toFloat := func(ints []int) []float64 {
		out := make([]float64, len(ints))
		for i, v := range ints {
			out[i] = float64(v) / 32768
		}
		return out
	}

	low := spectralCentroidMean(toFloat(sineSamples(500, sampleRate, sampleRate)), sampleRate)
	high := spectralCentroidMean(toFloat(sineSamples(3000, sampleRate, sampleRate)), sampleRate)

	assert.InDelta(t, 500, low, 200)
	assert.InDelta(t, 3000, high, 400)
	assert.Greater(t, high, low)
}

func TestSpectralCentroidMeanEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, spectralCentroidMean(nil, 16000))
	assert.Equal(t, 0.0, spectralCentroidMean([]float64{0.1}, 0))
}
