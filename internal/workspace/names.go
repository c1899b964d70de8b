package workspace

import (
	"path/filepath"
	"strings"
)

const (
	PromptSuffix        = "_prompt.txt"
	ResultSuffix        = "_result.txt"
	TranscriptSuffix    = "_transcript.txt"
	SummaryPromptSuffix = "_summary_prompt.txt"
)

// PromptID strips the prompt suffix from a prompt file name.
func PromptID(name string) string {
	return strings.TrimSuffix(filepath.Base(name), PromptSuffix)
}

// ResultName maps "<id>_prompt.txt" to "<id>_result.txt". Names without the
// prompt suffix are returned unchanged.
func ResultName(promptName string) string {
	return strings.ReplaceAll(promptName, PromptSuffix, ResultSuffix)
}

// AudioID is the audio file name without directory and extension.
func AudioID(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func TranscriptName(id string) string {
	return id + TranscriptSuffix
}

func SummaryPromptName(id string) string {
	return id + SummaryPromptSuffix
}
