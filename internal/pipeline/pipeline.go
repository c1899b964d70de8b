package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
)

// Run processes the audio files one at a time. A failed transcription is
// logged and skipped; a missing template or a failed write stops the run.
func (p *implPipeline) Run(ctx context.Context) (Report, error) {
	var report Report
	startTime := time.Now()

	files, err := DiscoverAudio(p.videosDir, p.extensions)
	if err != nil {
		return report, fmt.Errorf("discover audio: %w", err)
	}
	report.Found = len(files)

	if len(files) == 0 {
		p.logger.Info(ctx, "No audio files found in %s", p.videosDir)
		return report, nil
	}
	p.logger.Info(ctx, "Found %d audio files", len(files))

	for i, audioPath := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		id := workspace.AudioID(audioPath)
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), audioPath)

		if p.writer.hasTranscript(id) {
			p.logger.Info(ctx, "Transcript already exists, skipping: %s", id)
			report.Skipped++
			continue
		}

		transcript, ok := p.transcribe(ctx, audioPath)
		if !ok {
			report.Failed++
			continue
		}

		if language := p.detector.Detect(transcript); language != "" {
			p.logger.Info(ctx, "Detected transcript language: %s", language)
		}

		summaryPrompt, err := p.composer.Compose(transcript)
		if err != nil {
			return report, fmt.Errorf("compose summary prompt for %s: %w", id, err)
		}

		if err := p.writer.write(ctx, id, transcript, summaryPrompt); err != nil {
			return report, fmt.Errorf("save results for %s: %w", id, err)
		}
		report.Transcribed++
	}

	p.logger.Info(ctx, "Run complete in %s: %d found, %d transcribed, %d skipped, %d failed",
		time.Since(startTime).Round(time.Millisecond), report.Found, report.Transcribed, report.Skipped, report.Failed)
	return report, nil
}

// transcribe isolates engine failures to the current item.
func (p *implPipeline) transcribe(ctx context.Context, audioPath string) (string, bool) {
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		p.logger.Error(ctx, "Transcription failed for %s: %v", audioPath, err)
		return "", false
	}
	if transcript == "" {
		p.logger.Warn(ctx, "Transcription of %s produced no text", audioPath)
		return "", false
	}
	return transcript, true
}
