package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	BackendWhisperCPP = "whisper_cpp"
	BackendOpenAI     = "openai"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Mirror      MirrorConfig      `yaml:"mirror"`
	Server      ServerConfig      `yaml:"server"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// PathsConfig describes the output tree. Empty sub-directories are derived
// from Root.
type PathsConfig struct {
	Root        string `yaml:"root"`
	Videos      string `yaml:"videos"`
	Transcripts string `yaml:"transcripts"`
	Results     string `yaml:"results"`
	Processed   string `yaml:"processed"`
	Template    string `yaml:"template"`
}

type TranscriberConfig struct {
	Backend        string   `yaml:"backend"`
	Extensions     []string `yaml:"extensions"`
	DetectLanguage bool     `yaml:"detect_language"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type OpenAIConfig struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Language  string `yaml:"language"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type MirrorConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Endpoint     string `yaml:"endpoint"`
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Prefix       string `yaml:"prefix"`
	Secure       bool   `yaml:"secure"`
	AccessKeyEnv string `yaml:"access_key_env"`
	SecretKeyEnv string `yaml:"secret_key_env"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a validated configuration that mirrors the stock layout:
// an output/ tree next to the working directory and prompt.txt at its root.
func Default() *Config {
	cfg := &Config{}
	// Validate never fails on the zero config.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Root == "" {
		c.Paths.Root = "output"
	}
	if c.Paths.Videos == "" {
		c.Paths.Videos = filepath.Join(c.Paths.Root, "videos")
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = filepath.Join(c.Paths.Root, "transcripts")
	}
	if c.Paths.Results == "" {
		c.Paths.Results = filepath.Join(c.Paths.Root, "results")
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = filepath.Join(c.Paths.Root, "processed")
	}
	if c.Paths.Template == "" {
		c.Paths.Template = "prompt.txt"
	}

	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisperCPP
	}
	switch c.Transcriber.Backend {
	case BackendWhisperCPP, BackendOpenAI:
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}
	if len(c.Transcriber.Extensions) == 0 {
		c.Transcriber.Extensions = []string{".wav", ".mp3", ".m4a"}
	}
	for i, ext := range c.Transcriber.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("transcriber.extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Transcriber.Extensions[i] = ext
	}

	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.OpenAI.APIKeyEnv == "" {
		c.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}

	if c.Mirror.Enabled {
		if c.Mirror.Endpoint == "" {
			return fmt.Errorf("mirror.endpoint is required when mirror is enabled")
		}
		if c.Mirror.Bucket == "" {
			return fmt.Errorf("mirror.bucket is required when mirror is enabled")
		}
	}
	if c.Mirror.AccessKeyEnv == "" {
		c.Mirror.AccessKeyEnv = "S3_ACCESS_KEY"
	}
	if c.Mirror.SecretKeyEnv == "" {
		c.Mirror.SecretKeyEnv = "S3_SECRET_KEY"
	}

	if c.Server.Name == "" {
		c.Server.Name = "VideoTranscript3"
	}
	if c.Server.Version == "" {
		c.Server.Version = "1.0.0"
	}

	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 2 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}

// PipelineDirs are the directories the batch pipeline needs.
func (c *Config) PipelineDirs() []string {
	return []string{c.Paths.Videos, c.Paths.Transcripts, c.Paths.Results}
}

// ServerDirs are the directories the tool server needs.
func (c *Config) ServerDirs() []string {
	return []string{c.Paths.Results, c.Paths.Processed, c.Paths.Transcripts}
}

// Absolutize rewrites every path as an absolute path so that values handed
// back to callers do not depend on the working directory.
func (c *Config) Absolutize() error {
	for _, p := range []*string{
		&c.Paths.Root,
		&c.Paths.Videos,
		&c.Paths.Transcripts,
		&c.Paths.Results,
		&c.Paths.Processed,
		&c.Paths.Template,
	} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("resolve path %s: %w", *p, err)
		}
		*p = abs
	}
	return nil
}
