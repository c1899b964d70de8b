package transcriber

import "context"

type MockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audioPath string) (string, error)
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return m.TranscribeFunc(ctx, audioPath)
}
