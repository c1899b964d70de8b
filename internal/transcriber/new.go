package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/pkg/executor"
)

// New builds the Transcriber selected by cfg.Transcriber.Backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendWhisperCPP:
		return newWhisperCPP(cfg.Whisper, cfg.FFmpeg, exec, log), nil
	case config.BackendOpenAI:
		tr, err := newOpenAI(cfg.OpenAI, log)
		if err != nil {
			return nil, err
		}
		return tr, nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Transcriber.Backend)
	}
}
