package promptstore

import (
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
)

type implStore struct {
	resultsDir   string
	processedDir string
	logger       logger.Logger
}

// New creates a Store over resultsDir (pending prompts) and processedDir
// (saved results).
func New(resultsDir, processedDir string, log logger.Logger) Store {
	return &implStore{
		resultsDir:   resultsDir,
		processedDir: processedDir,
		logger:       log,
	}
}
