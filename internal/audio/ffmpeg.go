package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FFmpeg shells out to ffmpeg/ffprobe for format conversion, resampling
// and denoising. Paths are configurable so containers can pin binaries.
type FFmpeg struct {
	bin   string
	probe string
}

func NewFFmpeg(bin, probe string) *FFmpeg {
	if bin == "" {
		bin = "ffmpeg"
	}
	if probe == "" {
		probe = "ffprobe"
	}
	return &FFmpeg{bin: bin, probe: probe}
}

func (f *FFmpeg) Available() bool {
	_, err := exec.LookPath(f.bin)
	return err == nil
}

func (f *FFmpeg) Duration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, f.probe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}

// ConvertToWAV re-encodes any input into 16-bit PCM WAV.
func (f *FFmpeg) ConvertToWAV(ctx context.Context, in string) (string, error) {
	out := f.tempOut(".wav")
	cmd := exec.CommandContext(ctx, f.bin,
		"-i", in,
		"-acodec", "pcm_s16le",
		"-y", out,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg wav convert: %w\n%s", err, string(b))
	}
	return out, nil
}

// ConvertToFLAC produces mono FLAC at the given rate. The web speech
// recognizer only accepts FLAC payloads.
func (f *FFmpeg) ConvertToFLAC(ctx context.Context, in string, rate int) (string, error) {
	out := f.tempOut(".flac")
	cmd := exec.CommandContext(ctx, f.bin,
		"-i", in,
		"-acodec", "flac",
		"-ar", strconv.Itoa(rate),
		"-ac", "1",
		"-y", out,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg flac convert: %w\n%s", err, string(b))
	}
	return out, nil
}

// ExtractPCM resamples to mono signed 16-bit little-endian raw PCM at the
// given rate and returns the bytes. This is the segmenter's input format.
func (f *FFmpeg) ExtractPCM(ctx context.Context, in string, rate int) ([]byte, error) {
	cmd := exec.CommandContext(ctx, f.bin,
		"-v", "error",
		"-i", in,
		"-ac", "1",
		"-ar", strconv.Itoa(rate),
		"-f", "s16le",
		"-",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg pcm extract: %w", err)
	}
	return out, nil
}

// Denoise applies an FFT denoiser with loudness normalization and resamples
// to 22.05kHz mono, the rate the transcription engines were tuned against.
func (f *FFmpeg) Denoise(ctx context.Context, in string) (string, error) {
	out := f.tempOut(".wav")
	cmd := exec.CommandContext(ctx, f.bin,
		"-i", in,
		"-af", "afftdn,loudnorm",
		"-ar", "22050",
		"-ac", "1",
		"-y", out,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg denoise: %w\n%s", err, string(b))
	}
	return out, nil
}

func (f *FFmpeg) tempOut(ext string) string {
	return filepath.Join(os.TempDir(), uuid.NewString()+ext)
}
