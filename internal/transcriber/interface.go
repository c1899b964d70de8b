package transcriber

import "context"

// Transcriber turns one audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
