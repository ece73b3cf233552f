package config

import (
	"os"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid local config",
			config: Config{
				Whisper: WhisperConfig{
					Model:      "medium",
					Backend:    "local",
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
				Paths: PathsConfig{
					Input: "data/input",
					Text:  "data/text",
				},
			},
			wantErr: false,
		},
		{
			name: "local backend missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					Backend:   "local",
					ModelsDir: "models",
				},
				Paths: PathsConfig{
					Input: "data/input",
					Text:  "data/text",
				},
			},
			wantErr: true,
		},
		{
			name: "openai whisper backend needs no binary",
			config: Config{
				Whisper: WhisperConfig{
					Backend: "openai",
				},
				Paths: PathsConfig{
					Input: "data/input",
					Text:  "data/text",
				},
			},
			wantErr: false,
		},
		{
			name: "gemini backend requires keys",
			config: Config{
				Whisper: WhisperConfig{
					Backend: "openai",
				},
				LLM: LLMConfig{
					Backend: "gemini",
				},
				Paths: PathsConfig{
					Input: "data/input",
					Text:  "data/text",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Whisper: WhisperConfig{
					Backend:    "local",
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			Backend:    "local",
			BinaryPath: "./whisper-cli",
			ModelsDir:  "models",
		},
		Paths: PathsConfig{
			Input: "data/input",
			Text:  "data/text",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.ChunkMS != 30000 {
		t.Errorf("ChunkMS default = %d, want 30000", cfg.Whisper.ChunkMS)
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model default = %q, want medium", cfg.Whisper.Model)
	}
	if cfg.LLM.Backend != "openai" {
		t.Errorf("LLM backend default = %q, want openai", cfg.LLM.Backend)
	}
	if !strings.Contains(cfg.LLM.BaseURL, "11434") {
		t.Errorf("BaseURL default = %q, want Ollama endpoint", cfg.LLM.BaseURL)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent default = %d, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model: "small.en"
  backend: "local"
  binary_path: "./whisper-cli"
  models_dir: "models"
  chunk_ms: 15000

llm:
  backend: "openai"
  base_url: "http://localhost:11434/v1"
  model: "llama3.2:3b-instruct-q4_K_M"

paths:
  input: "data/input"
  text: "data/text"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "small.en" {
		t.Errorf("Model = %v, want small.en", cfg.Whisper.Model)
	}
	if cfg.Whisper.ChunkMS != 15000 {
		t.Errorf("ChunkMS = %v, want 15000", cfg.Whisper.ChunkMS)
	}
	if cfg.LLM.Model != "llama3.2:3b-instruct-q4_K_M" {
		t.Errorf("LLM model = %v", cfg.LLM.Model)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
