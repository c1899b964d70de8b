package promptstore

import "context"

// Store finds pending prompt files and persists their processed results.
type Store interface {
	// Locate returns the first pending "<id>_prompt.txt" in the results directory.
	Locate(ctx context.Context) (PromptFile, error)
	// ResultPath is the absolute path Save would write for promptName.
	ResultPath(promptName string) string
	// Save writes content as the result for filename and returns the absolute path.
	Save(ctx context.Context, content, filename string) (string, error)
	// ReadResult reads a saved result from the processed directory.
	ReadResult(ctx context.Context, filename string) (FileContent, error)
	// ReadPrompt reads a file as-is from the results directory.
	ReadPrompt(ctx context.Context, filename string) (FileContent, error)
}

type PromptFile struct {
	ID      string
	Name    string
	Path    string
	Content string
}

type FileContent struct {
	Path    string
	Content string
}
