package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessQualityThresholds(t *testing.T) {
	tests := []struct {
		name        string
		noiseLevel  float64
		speechRatio float64
		want        string
	}{
		{"quiet and talkative", 500, 0.9, QualityExcellent},
		{"excellent boundary misses on ratio", 500, 0.6, QualityGood},
		{"moderate noise", 1500, 0.5, QualityGood},
		{"noisy but audible", 3000, 0.3, QualityFair},
		{"very noisy", 5000, 0.9, QualityPoor},
		{"quiet but no speech", 100, 0.05, QualityPoor},
		{"neutral defaults", 2500, 0.5, QualityFair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessQuality(tt.noiseLevel, tt.speechRatio))
		})
	}
}

func qualityRank(label string) int {
	switch label {
	case QualityPoor:
		return 0
	case QualityFair:
		return 1
	case QualityGood:
		return 2
	case QualityExcellent:
		return 3
	}
	return -1
}

// Lower noise or more speech must never lower the label.
func TestAssessQualityMonotonic(t *testing.T) {
	noiseLevels := []float64{0, 500, 999, 1000, 1500, 1999, 2000, 3000, 3999, 4000, 8000}
	ratios := []float64{0, 0.1, 0.2, 0.21, 0.4, 0.41, 0.6, 0.61, 0.8, 1.0}

	for _, ratio := range ratios {
		for i := 1; i < len(noiseLevels); i++ {
			quieter := qualityRank(AssessQuality(noiseLevels[i-1], ratio))
			noisier := qualityRank(AssessQuality(noiseLevels[i], ratio))
			assert.GreaterOrEqual(t, quieter, noisier,
				"noise %v -> %v at ratio %v", noiseLevels[i-1], noiseLevels[i], ratio)
		}
	}

	for _, noise := range noiseLevels {
		for i := 1; i < len(ratios); i++ {
			lessSpeech := qualityRank(AssessQuality(noise, ratios[i-1]))
			moreSpeech := qualityRank(AssessQuality(noise, ratios[i]))
			assert.GreaterOrEqual(t, moreSpeech, lessSpeech,
				"ratio %v -> %v at noise %v", ratios[i-1], ratios[i], noise)
		}
	}
}
