package promptstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
)

func (s *implStore) Locate(ctx context.Context) (PromptFile, error) {
	matches, err := s.promptFiles()
	if err != nil {
		return PromptFile{}, err
	}
	s.logger.Debug(ctx, "Found prompt files: %v", matches)

	if len(matches) == 0 {
		return PromptFile{}, ErrNoPromptFile
	}

	path, err := filepath.Abs(matches[0])
	if err != nil {
		return PromptFile{}, fmt.Errorf("resolve prompt path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return PromptFile{}, fmt.Errorf("read prompt file: %w", err)
	}

	name := filepath.Base(path)
	s.logger.Debug(ctx, "Prompt file read: %s", name)

	return PromptFile{
		ID:      workspace.PromptID(name),
		Name:    name,
		Path:    path,
		Content: string(content),
	}, nil
}

// promptFiles lists the *_prompt.txt files in the results dir, sorted.
func (s *implStore) promptFiles() ([]string, error) {
	entries, err := os.ReadDir(s.resultsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read results dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), workspace.PromptSuffix) {
			continue
		}
		files = append(files, filepath.Join(s.resultsDir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}

func (s *implStore) ResultPath(promptName string) string {
	path := filepath.Join(s.processedDir, workspace.ResultName(filepath.Base(promptName)))
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (s *implStore) Save(ctx context.Context, content, filename string) (string, error) {
	path := s.ResultPath(filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	s.logger.Info(ctx, "Result saved: %s", path)
	return path, nil
}

func (s *implStore) ReadResult(ctx context.Context, filename string) (FileContent, error) {
	return s.read(ctx, s.ResultPath(filename))
}

func (s *implStore) ReadPrompt(ctx context.Context, filename string) (FileContent, error) {
	return s.read(ctx, filepath.Join(s.resultsDir, filepath.Base(filename)))
}

func (s *implStore) read(ctx context.Context, path string) (FileContent, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileContent{}, fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileContent{}, &NotFoundError{Path: abs}
		}
		return FileContent{}, fmt.Errorf("read file: %w", err)
	}

	s.logger.Debug(ctx, "File read: %s", abs)
	return FileContent{Path: abs, Content: string(data)}, nil
}
