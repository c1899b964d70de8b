package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/pkg/executor"
)

type whisperCPP struct {
	whisper  config.WhisperConfig
	ffmpeg   config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

func newWhisperCPP(whisper config.WhisperConfig, ffmpeg config.FFmpegConfig, exec executor.Executor, log logger.Logger) *whisperCPP {
	return &whisperCPP{
		whisper:  whisper,
		ffmpeg:   ffmpeg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe converts audioPath to 16kHz mono WAV in a scratch directory and
// runs whisper.cpp on it. The binary loads the model on every call.
func (w *whisperCPP) Transcribe(ctx context.Context, audioPath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	base := filepath.Base(audioPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	wavPath, err := w.extractAudio(ctx, audioPath, filepath.Join(tempDir, stem+".wav"))
	if err != nil {
		return "", err
	}

	outputPrefix := filepath.Join(tempDir, stem)
	if err := w.runWhisper(ctx, wavPath, outputPrefix); err != nil {
		return "", err
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// extractAudio resamples the input with ffmpeg.
// -vn: drop video, -ar/-ac: sample rate and mono, -c:a pcm_s16le: WAV PCM, -y: overwrite
func (w *whisperCPP) extractAudio(ctx context.Context, audioPath, wavPath string) (string, error) {
	w.logger.Debug(ctx, "Converting audio: %s -> %s", audioPath, wavPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", strconv.Itoa(w.ffmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := w.executor.Execute(ctx, w.ffmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return wavPath, nil
}

// runWhisper writes "<outputPrefix>.txt".
// -m: model, -f: input, -otxt: plain text output, -l: language, -t: threads
func (w *whisperCPP) runWhisper(ctx context.Context, wavPath, outputPrefix string) error {
	w.logger.Info(ctx, "Transcribing with %s (%d threads): %s", w.whisper.ModelPath, w.whisper.Threads, wavPath)

	args := []string{
		"-m", w.whisper.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.whisper.Language,
		"-t", strconv.Itoa(w.whisper.Threads),
		"--output-file", outputPrefix,
	}
	if w.whisper.Prompt != "" {
		args = append(args, "--prompt", w.whisper.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.whisper.BinaryPath, args...); err != nil {
		return fmt.Errorf("whisper transcribe: %w", err)
	}
	return nil
}
