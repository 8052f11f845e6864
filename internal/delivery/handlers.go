package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/audio"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/tts"
)

const maxUploadBytes = 50 << 20

type TTSService interface {
	Synthesize(ctx context.Context, req tts.Request) ([]byte, error)
	Availability() map[string]bool
}

type AudioAnalyzer interface {
	Analyze(ctx context.Context, path string) (*audio.Analysis, error)
}

type AudioEnhancer interface {
	Denoise(ctx context.Context, in string) (string, error)
	Available() bool
}

type Handler struct {
	transcriber ports.TranscriptionService
	ttsService  TTSService
	analyzer    AudioAnalyzer
	enhancer    AudioEnhancer
	history     ports.TranscriptService
	vadReady    bool
	log         *logger.ZapLogger
}

func NewHandler(
	transcriber ports.TranscriptionService,
	ttsService TTSService,
	analyzer AudioAnalyzer,
	enhancer AudioEnhancer,
	history ports.TranscriptService,
	vadReady bool,
	log *logger.ZapLogger,
) *Handler {
	return &Handler{
		transcriber: transcriber,
		ttsService:  ttsService,
		analyzer:    analyzer,
		enhancer:    enhancer,
		history:     history,
		vadReady:    vadReady,
		log:         log,
	}
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"message": "Auralis Transcriptor Audio Services",
		"status":  "online",
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	services := map[string]bool{
		"vad":             h.vadReady,
		"noise_reduction": h.enhancer.Available(),
	}
	for name, ok := range h.transcriber.Availability() {
		services[name] = ok
	}
	for name, ok := range h.ttsService.Availability() {
		services[name] = ok
	}

	writeJSON(w, map[string]any{
		"status":   "healthy",
		"services": services,
	})
}

func (h *Handler) AnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	path, _, ok := h.saveUploadedFile(w, r)
	if !ok {
		return
	}
	defer os.Remove(path)

	analysis, err := h.analyzer.Analyze(r.Context(), path)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "audio analysis failed", Error: err})
		http.Error(w, "audio analysis failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if analysis.VADSegments == nil {
		analysis.VADSegments = []audio.Segment{}
	}

	writeJSON(w, analysis)
}

func (h *Handler) EnhanceAudio(w http.ResponseWriter, r *http.Request) {
	path, _, ok := h.saveUploadedFile(w, r)
	if !ok {
		return
	}
	defer os.Remove(path)

	enhanced, err := h.enhancer.Denoise(r.Context(), path)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "audio enhancement failed", Error: err})
		http.Error(w, "audio enhancement failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(enhanced)

	data, err := os.ReadFile(enhanced)
	if err != nil {
		http.Error(w, "failed to read enhanced audio: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", `attachment; filename="enhanced_audio.wav"`)
	_, _ = w.Write(data)
}

func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	path, filename, ok := h.saveUploadedFile(w, r)
	if !ok {
		return
	}
	defer os.Remove(path)

	opts := ports.TranscribeOptions{
		Provider:               formValue(r, "provider", "whisper"),
		Language:               formValue(r, "language", "en"),
		EnableSpeakerDetection: formBool(r, "enable_speaker_detection", false),
		EnableNoiseReduction:   formBool(r, "enable_noise_reduction", true),
	}

	result, err := h.transcriber.Transcribe(r.Context(), path, filename, opts)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err})
		http.Error(w, "transcription failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

func (h *Handler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req tts.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	data, err := h.ttsService.Synthesize(r.Context(), req)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "tts generation failed", Error: err})
		http.Error(w, "tts generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="speech.mp3"`)
	_, _ = w.Write(data)
}

func (h *Handler) ListTranscriptions(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeJSON(w, []ports.TranscriptRecord{})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.history.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history query failed", Error: err})
		http.Error(w, "failed to list transcriptions: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []ports.TranscriptRecord{}
	}

	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func formValue(r *http.Request, name, def string) string {
	if v := r.FormValue(name); v != "" {
		return v
	}
	return def
}

func formBool(r *http.Request, name string, def bool) bool {
	v := r.FormValue(name)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
