package mirror

import "context"

// Mirror copies files written locally to object storage.
type Mirror interface {
	// Upload stores localPath under "<prefix>/<kind>/<basename>".
	Upload(ctx context.Context, kind, localPath string) error
	Enabled() bool
}

const (
	KindTranscript    = "transcripts"
	KindSummaryPrompt = "results"
	KindResult        = "processed"
)
