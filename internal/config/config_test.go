package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "openai backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: BackendOpenAI},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "vosk"},
			},
			wantErr: true,
		},
		{
			name: "empty extension",
			config: Config{
				Transcriber: TranscriberConfig{Extensions: []string{".wav", " "}},
			},
			wantErr: true,
		},
		{
			name: "mirror without bucket",
			config: Config{
				Mirror: MirrorConfig{Enabled: true, Endpoint: "s3.example.com"},
			},
			wantErr: true,
		},
		{
			name: "mirror without endpoint",
			config: Config{
				Mirror: MirrorConfig{Enabled: true, Bucket: "transcripts"},
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

func TestValidateDerivesPathsFromRoot(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Root: "data"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := map[string]string{
		"videos":      filepath.Join("data", "videos"),
		"transcripts": filepath.Join("data", "transcripts"),
		"results":     filepath.Join("data", "results"),
		"processed":   filepath.Join("data", "processed"),
	}
	got := map[string]string{
		"videos":      cfg.Paths.Videos,
		"transcripts": cfg.Paths.Transcripts,
		"results":     cfg.Paths.Results,
		"processed":   cfg.Paths.Processed,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if cfg.Paths.Template != "prompt.txt" {
		t.Errorf("Template = %q, want prompt.txt", cfg.Paths.Template)
	}
}

func TestValidateNormalizesExtensions(t *testing.T) {
	cfg := Config{Transcriber: TranscriberConfig{Extensions: []string{"WAV", ".Mp3"}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Transcriber.Extensions[0] != ".wav" || cfg.Transcriber.Extensions[1] != ".mp3" {
		t.Errorf("Extensions = %v, want [.wav .mp3]", cfg.Transcriber.Extensions)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Paths.Root != "output" {
		t.Errorf("Root = %q, want output", cfg.Paths.Root)
	}
	if len(cfg.Transcriber.Extensions) != 3 {
		t.Errorf("Extensions = %v, want 3 entries", cfg.Transcriber.Extensions)
	}
	if cfg.Transcriber.Backend != BackendWhisperCPP {
		t.Errorf("Backend = %q, want %q", cfg.Transcriber.Backend, BackendWhisperCPP)
	}
	if cfg.Server.Name != "VideoTranscript3" {
		t.Errorf("Server.Name = %q", cfg.Server.Name)
	}
	if len(cfg.ServerDirs()) != 3 || len(cfg.PipelineDirs()) != 3 {
		t.Errorf("unexpected dir sets: %v %v", cfg.ServerDirs(), cfg.PipelineDirs())
	}
}

func TestAbsolutize(t *testing.T) {
	cfg := Default()
	if err := cfg.Absolutize(); err != nil {
		t.Fatalf("Absolutize() error = %v", err)
	}
	for _, p := range []string{cfg.Paths.Root, cfg.Paths.Results, cfg.Paths.Processed, cfg.Paths.Template} {
		if !filepath.IsAbs(p) {
			t.Errorf("%q is not absolute", p)
		}
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  root: "data/output"
  template: "templates/summary.txt"

transcriber:
  backend: "openai"
  detect_language: true

openai:
  language: "de"

watch:
  debounce: "5s"

logging:
  level: "debug"
  format: "json"
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

	if cfg.Paths.Videos != filepath.Join("data/output", "videos") {
		t.Errorf("Videos = %v", cfg.Paths.Videos)
	}
	if cfg.Paths.Template != "templates/summary.txt" {
		t.Errorf("Template = %v", cfg.Paths.Template)
	}
	if cfg.Transcriber.Backend != BackendOpenAI || !cfg.Transcriber.DetectLanguage {
		t.Errorf("Transcriber = %+v", cfg.Transcriber)
	}
	if cfg.OpenAI.Model != "whisper-1" {
		t.Errorf("OpenAI.Model = %v, want whisper-1", cfg.OpenAI.Model)
	}
	if cfg.Watch.Debounce != 5*time.Second {
		t.Errorf("Debounce = %v, want 5s", cfg.Watch.Debounce)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v", cfg.Logging.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMissingDefaultUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Paths.Root != "output" {
		t.Errorf("Root = %q, want output", cfg.Paths.Root)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
