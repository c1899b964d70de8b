package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/internal/mirror"
	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
)

type resultWriter struct {
	transcriptsDir string
	resultsDir     string
	mirror         mirror.Mirror
	logger         logger.Logger
}

func (w *resultWriter) transcriptPath(id string) string {
	return filepath.Join(w.transcriptsDir, workspace.TranscriptName(id))
}

// hasTranscript reports whether id was already transcribed. The transcript
// file is the only marker.
func (w *resultWriter) hasTranscript(id string) bool {
	_, err := os.Stat(w.transcriptPath(id))
	return err == nil
}

// write stores the transcript, then the summary prompt. The pair is not
// atomic: a crash in between leaves a transcript without its prompt.
func (w *resultWriter) write(ctx context.Context, id, transcript, summaryPrompt string) error {
	transcriptPath := w.transcriptPath(id)
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	w.logger.Info(ctx, "Transcript saved: %s", transcriptPath)

	promptPath := filepath.Join(w.resultsDir, workspace.SummaryPromptName(id))
	if err := os.WriteFile(promptPath, []byte(summaryPrompt), 0644); err != nil {
		return fmt.Errorf("write summary prompt: %w", err)
	}
	w.logger.Info(ctx, "Summary prompt saved: %s", promptPath)

	if w.mirror.Enabled() {
		w.mirrorFile(ctx, mirror.KindTranscript, transcriptPath)
		w.mirrorFile(ctx, mirror.KindSummaryPrompt, promptPath)
	}
	return nil
}

func (w *resultWriter) mirrorFile(ctx context.Context, kind, path string) {
	if err := w.mirror.Upload(ctx, kind, path); err != nil {
		w.logger.Warn(ctx, "Failed to mirror %s: %v", path, err)
	}
}
