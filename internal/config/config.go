package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" env-default:"8000"`

	OpenAI struct {
		APIKey string `env:"OPENAI_API_KEY"`
	}

	Deepgram struct {
		APIKey string `env:"DEEPGRAM_API_KEY"`
	}

	Whisper struct {
		ServerURL string `env:"WHISPER_SERVER_URL"`
		Model     string `env:"WHISPER_MODEL" env-default:"base"`
	}

	ElevenLabs struct {
		APIKey  string `env:"ELEVENLABS_API_KEY"`
		VoiceID string `env:"ELEVENLABS_VOICE_ID" env-default:"EXAVITQu4vr4xnSDxMaL"`
	}

	Postgres struct {
		DSN string `env:"DATABASE_URL"`
	}

	S3 struct {
		Endpoint  string `env:"S3_ENDPOINT"`
		AccessKey string `env:"S3_ACCESS_KEY"`
		SecretKey string `env:"S3_SECRET_KEY"`
		Bucket    string `env:"S3_BUCKET"`
		Region    string `env:"S3_REGION"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}

	Telegram struct {
		Token       string `env:"TELEGRAM_BOT_TOKEN"`
		AdminChatID int64  `env:"ADMIN_CHAT_ID"`
	}

	FFmpeg struct {
		BinPath   string `env:"FFMPEG_PATH" env-default:"ffmpeg"`
		ProbePath string `env:"FFPROBE_PATH" env-default:"ffprobe"`
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
