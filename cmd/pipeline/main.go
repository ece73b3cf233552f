package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"radioscribe/internal/audio"
	"radioscribe/internal/config"
	"radioscribe/internal/llm"
	"radioscribe/internal/logger"
	"radioscribe/internal/pipeline"
	"radioscribe/internal/report"
	"radioscribe/internal/session"
	"radioscribe/internal/stopsignal"
	"radioscribe/internal/summarizer"
	"radioscribe/internal/transcriber"
	"radioscribe/internal/watcher"
	"radioscribe/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	audioFile := flag.String("file", "", "transcribe a single audio file and exit")
	flag.Parse()

	ctx := context.Background()

	// API keys come from the environment; .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Radio Transcription & Summary Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Whisper model: %s (%s backend)", cfg.Whisper.Model, cfg.Whisper.Backend)
	log.Info(ctx, "Generation model: %s (%s backend)", cfg.LLM.Model, cfg.LLM.Backend)
	log.Info(ctx, "Chunk size: %dms", cfg.Whisper.ChunkMS)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	stop, err := stopsignal.New(cfg.Paths.Text)
	if err != nil {
		log.Error(ctx, "Failed to set up stop signal: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// First signal requests a cooperative stop at the next chunk boundary;
	// a second one cancels outright.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Stop requested, finishing current chunk...")
		if err := stop.RequestStop(); err != nil {
			log.Error(ctx, "Failed to request stop: %v", err)
		}
		<-sigChan
		log.Warn(ctx, "Second signal, cancelling immediately")
		cancel()
	}()

	if *audioFile != "" {
		if err := runFile(ctx, cfg, exec, stop, log, *audioFile); err != nil {
			log.Error(ctx, "Run failed: %v", err)
			os.Exit(1)
		}
		return
	}

	handler := func(ctx context.Context, path string) error {
		return runFile(ctx, cfg, exec, stop, log, path)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring %s, press Ctrl+C to stop", cfg.Paths.Input)
	if err := w.Start(ctx); err != nil && err != context.Canceled {
		log.Error(ctx, "Watcher error: %v", err)
		os.Exit(1)
	}
}

// runFile drives one full session over a single audio file: chunked
// transcription, per-increment summarization, and an optional docx report of
// the final state.
func runFile(ctx context.Context, cfg *config.Config, exec executor.Executor, stop stopsignal.Coordinator, log logger.Logger, audioPath string) error {
	sess, err := session.New(audioPath, cfg.Paths.Text, cfg.Paths.Temp)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() {
		if err := sess.Cleanup(); err != nil {
			log.Warn(ctx, "Session cleanup failed: %v", err)
		}
	}()

	log.Info(ctx, "Session %s: %s", sess.ID, audioPath)

	source := audio.NewSource(audioPath, sess.TempDir, exec)

	backend, err := newSTTBackend(cfg, exec)
	if err != nil {
		return err
	}

	tr, err := transcriber.New(cfg.Whisper.Model, source, sess, stop, backend, cfg.Whisper.ChunkMS, log)
	if err != nil {
		return err
	}

	sum, err := summarizer.New(ctx, newLLMClient(cfg), cfg.LLM.Model, sess, log)
	if err != nil {
		return err
	}

	var last pipeline.Pair
	handler := func(ctx context.Context, pair pipeline.Pair) error {
		last = pair
		log.Info(ctx, "Transcript: %d chars | Summary: %s (%s)",
			len(pair.Transcript), pair.Summary.Summary.Title, pair.Summary.Status)
		return nil
	}

	if err := pipeline.New(tr, sum, log).Run(ctx, handler); err != nil {
		return err
	}

	log.Info(ctx, "Transcript: %s", sess.TranscriptPath)
	log.Info(ctx, "Summary:    %s", sess.SummaryPath)

	if cfg.Report.Enabled && last.Transcript != "" {
		if err := report.Write(sess.ReportPath, audioPath, last.Transcript, last.Summary.Summary); err != nil {
			log.Warn(ctx, "Failed to write report: %v", err)
		} else {
			log.Info(ctx, "Report:     %s", sess.ReportPath)
		}
	}

	return nil
}

func newSTTBackend(cfg *config.Config, exec executor.Executor) (transcriber.Backend, error) {
	switch cfg.Whisper.Backend {
	case "local":
		return transcriber.NewLocalBackend(
			cfg.Whisper.BinaryPath,
			cfg.Whisper.ModelsDir,
			cfg.Whisper.Model,
			cfg.Whisper.Language,
			cfg.Whisper.Threads,
			exec,
		)
	case "openai":
		return transcriber.NewRemoteBackend(os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_API_KEY")), nil
	default:
		return nil, fmt.Errorf("unknown whisper backend %q", cfg.Whisper.Backend)
	}
}

func newLLMClient(cfg *config.Config) llm.Client {
	if cfg.LLM.Backend == "gemini" {
		keys := cfg.LLM.GeminiAPIKeys
		if env := os.Getenv("GEMINI_API_KEYS"); env != "" {
			keys = strings.Split(env, ",")
		}
		return llm.NewGemini(keys)
	}

	apiKey := cfg.LLM.APIKey
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		apiKey = env
	}
	return llm.NewOpenAI(cfg.LLM.BaseURL, apiKey)
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Text,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
