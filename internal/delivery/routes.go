package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", h.Root)
		pr.Get("/health", h.Health)

		// --- audio ---
		pr.Post("/audio/analyze", h.AnalyzeAudio)
		pr.Post("/audio/enhance", h.EnhanceAudio)

		// --- transcription ---
		pr.Post("/transcribe", h.Transcribe)
		pr.Get("/transcriptions", h.ListTranscriptions)

		// --- synthesis ---
		pr.Post("/tts", h.TextToSpeech)
	})
}
