package pipeline

import (
	"github.com/nguyentantai21042004/transcript-relay/internal/composer"
	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/langdetect"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/internal/mirror"
	"github.com/nguyentantai21042004/transcript-relay/internal/transcriber"
)

type implPipeline struct {
	videosDir   string
	extensions  []string
	transcriber transcriber.Transcriber
	composer    composer.Composer
	detector    langdetect.Detector
	writer      *resultWriter
	logger      logger.Logger
}

// New creates a Pipeline over the directories in cfg.Paths.
func New(
	cfg *config.Config,
	tr transcriber.Transcriber,
	comp composer.Composer,
	det langdetect.Detector,
	mir mirror.Mirror,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		videosDir:   cfg.Paths.Videos,
		extensions:  cfg.Transcriber.Extensions,
		transcriber: tr,
		composer:    comp,
		detector:    det,
		writer: &resultWriter{
			transcriptsDir: cfg.Paths.Transcripts,
			resultsDir:     cfg.Paths.Results,
			mirror:         mir,
			logger:         log,
		},
		logger: log,
	}
}
