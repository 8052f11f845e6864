package audio

// Quality labels, worst to best: poor < fair < good < excellent.
const (
	QualityPoor      = "poor"
	QualityFair      = "fair"
	QualityGood      = "good"
	QualityExcellent = "excellent"
)

// AssessQuality maps (noise level, speech ratio) to an ordinal label.
// The thresholds are inherited placeholders, not calibrated values.
// Nesting keeps the function monotonic: lowering noise or raising the
// speech ratio never lowers the label.
func AssessQuality(noiseLevel, speechRatio float64) string {
	switch {
	case noiseLevel < 1000 && speechRatio > 0.6:
		return QualityExcellent
	case noiseLevel < 2000 && speechRatio > 0.4:
		return QualityGood
	case noiseLevel < 4000 && speechRatio > 0.2:
		return QualityFair
	default:
		return QualityPoor
	}
}
