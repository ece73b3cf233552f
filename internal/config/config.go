package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	LLM         LLMConfig         `yaml:"llm"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Report      ReportConfig      `yaml:"report"`
}

type WhisperConfig struct {
	Model      string `yaml:"model"`       // size class: tiny, base, small, medium, large, large-v2, large-v3 (+ .en variants)
	Backend    string `yaml:"backend"`     // "local" (whisper.cpp binary) or "openai" (audio transcription API)
	BinaryPath string `yaml:"binary_path"` // local backend only
	ModelsDir  string `yaml:"models_dir"`  // local backend only, holds ggml-<model>.bin files
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	ChunkMS    int    `yaml:"chunk_ms"` // fixed window size per session
}

type LLMConfig struct {
	Backend       string   `yaml:"backend"`  // "openai" (any OpenAI-compatible endpoint, e.g. Ollama /v1) or "gemini"
	BaseURL       string   `yaml:"base_url"` // openai backend only
	APIKey        string   `yaml:"api_key"`
	Model         string   `yaml:"model"`
	GeminiAPIKeys []string `yaml:"gemini_api_keys"` // gemini backend only, rotated on quota errors
}

type PathsConfig struct {
	Input string `yaml:"input"` // watched for new audio files
	Text  string `yaml:"text"`  // transcript, summary and report output
	Temp  string `yaml:"temp"`  // per-run chunk scratch space
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ReportConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.Model == "" {
		c.Whisper.Model = "medium"
	}
	if c.Whisper.Backend == "" {
		c.Whisper.Backend = "local"
	}
	if c.Whisper.Backend == "local" && c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required for the local backend")
	}
	if c.Whisper.Backend == "local" && c.Whisper.ModelsDir == "" {
		return fmt.Errorf("whisper.models_dir is required for the local backend")
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.ChunkMS == 0 {
		c.Whisper.ChunkMS = 30000
	}
	if c.Whisper.ChunkMS < 0 {
		return fmt.Errorf("whisper.chunk_ms must be positive")
	}

	if c.LLM.Backend == "" {
		c.LLM.Backend = "openai"
	}
	if c.LLM.Backend == "openai" && c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "http://localhost:11434/v1"
	}
	if c.LLM.Backend == "gemini" && len(c.LLM.GeminiAPIKeys) == 0 {
		return fmt.Errorf("llm.gemini_api_keys is required for the gemini backend")
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "llama3.2:3b-instruct-q4_K_M"
	}

	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Text == "" {
		return fmt.Errorf("paths.text is required")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
