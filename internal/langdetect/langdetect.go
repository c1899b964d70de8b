package langdetect

import (
	"github.com/pemistahl/lingua-go"
)

// Detector names the language a transcript is written in.
type Detector interface {
	// Detect returns the language name, or "" when the text is too short or
	// ambiguous to tell.
	Detect(text string) string
}

type implDetector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all languages lingua knows. Models load lazily
// on first use.
func New() Detector {
	return &implDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build(),
	}
}

// NewFor restricts detection to the given languages.
func NewFor(languages ...lingua.Language) Detector {
	return &implDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build(),
	}
}

func (d *implDetector) Detect(text string) string {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return language.String()
}

type nopDetector struct{}

// NewNop returns a Detector that never detects anything.
func NewNop() Detector { return nopDetector{} }

func (nopDetector) Detect(string) string { return "" }
