package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            int           `env:"PORT" env-default:"8000"`
	StaticDir       string        `env:"STATIC_DIR"`
	UploadDir       string        `env:"UPLOAD_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Log             LogConfig
	OpenAI          OpenAIConfig `env-prefix:"OPENAI_"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
	JSON  bool   `env:"LOG_JSON" env-default:"false"`
}

type OpenAIConfig struct {
	APIKey             string `env:"API_KEY" env-required:"true"`
	BaseURL            string `env:"BASE_URL"`
	ChatModel          string `env:"CHAT_MODEL" env-default:"gpt-4o-mini"`
	TranscriptionModel string `env:"TRANSCRIPTION_MODEL" env-default:"whisper-1"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. Values already present in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
