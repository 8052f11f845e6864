package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/audio"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/cache"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/config"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/delivery"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/domain"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/infra"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/notify"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/transcribe"
	"github.com/Cyberdad247/Auralis-Transcriptor/internal/tts"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	_ "github.com/lib/pq"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// CONFIG / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// OPTIONAL INFRASTRUCTURE (history DB, archive bucket, cache, notifier)
	// =========================================================================

	var history ports.TranscriptService
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("db ping failed: %v", err)
		}
		cancel()

		history = domain.NewTranscriptService(infra.NewTranscriptRepo(db), zl)
	}

	var archive ports.ArchiveService
	if cfg.S3.Endpoint != "" {
		s3Client, err := infra.NewS3Client(infra.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
		})
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		archive = domain.NewArchiveService(s3Client)
	}

	var audioCache cache.Cache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("failed to init redis: %v", err)
		}
		defer rc.Close()
		audioCache = rc
	}

	var notifier notify.Notificator
	if cfg.Telegram.Token != "" && cfg.Telegram.AdminChatID != 0 {
		tg, err := notify.NewTelegramInfra(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Fatalf("failed to init telegram notifier: %v", err)
		}
		notifier = tg
	}
	errService := notify.NewService(notifier)

	// =========================================================================
	// AUDIO PIPELINE
	// =========================================================================

	ffmpeg := audio.NewFFmpeg(cfg.FFmpeg.BinPath, cfg.FFmpeg.ProbePath)

	classifier, err := audio.NewWebRTCClassifier(2)
	vadReady := err == nil
	if err != nil {
		zl.Log(logger.LogEntry{Level: "warn", Message: "vad init failed, segments disabled", Error: err})
	}
	segmenter := audio.NewSegmenter(classifier, zl)
	analyzer := audio.NewAnalyzer(ffmpeg, segmenter, zl)

	// =========================================================================
	// CLIENTS (STT / TTS)
	// =========================================================================

	var openAIClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		openAIClient = openai.NewClient(cfg.OpenAI.APIKey)
	}

	var openaiEngine transcribe.Engine
	var openaiSynth tts.Synthesizer
	if openAIClient != nil {
		openaiEngine = transcribe.NewOpenAIEngine(openAIClient)
		openaiSynth = tts.NewOpenAISynthesizer(openAIClient)
	}

	var deepgramEngine transcribe.Engine
	if cfg.Deepgram.APIKey != "" {
		deepgramEngine = transcribe.NewDeepgramEngine(cfg.Deepgram.APIKey)
	}

	var whisperEngine transcribe.Engine
	if cfg.Whisper.ServerURL != "" {
		whisperEngine = transcribe.NewWhisperServerEngine(cfg.Whisper.ServerURL, cfg.Whisper.Model)
	}

	fallbackEngine := transcribe.NewWebSpeechEngine("", ffmpeg)

	var elevenLabsSynth tts.Synthesizer
	if cfg.ElevenLabs.APIKey != "" {
		elevenLabsSynth = tts.NewElevenLabsSynthesizer(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.VoiceID)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	transcriptionService := transcribe.NewService(
		openaiEngine,
		deepgramEngine,
		whisperEngine,
		fallbackEngine,
		ffmpeg,
		history,
		archive,
		errService,
		zl,
	)

	ttsService := tts.NewService(
		tts.NewGTTSSynthesizer(),
		openaiSynth,
		elevenLabsSynth,
		audioCache,
		errService,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(httprate.LimitByIP(120, time.Minute))

	handler := delivery.NewHandler(
		transcriptionService,
		ttsService,
		analyzer,
		ffmpeg,
		history,
		vadReady,
		zl,
	)

	delivery.RegisterRoutes(r, handler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "auralis-transcriptor",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
