package pipeline

import "context"

// Pipeline transcribes every pending audio file and writes its summary prompt.
type Pipeline interface {
	Run(ctx context.Context) (Report, error)
}

// Report counts what one Run did.
type Report struct {
	Found       int
	Skipped     int
	Transcribed int
	Failed      int
}
