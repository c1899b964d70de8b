package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/internal/mirror"
	"github.com/nguyentantai21042004/transcript-relay/internal/promptstore"
	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
)

var ErrFilenameRequired = errors.New("filename is required")

// PendingPrompt is a located prompt file and where its result belongs.
type PendingPrompt struct {
	ID         string `json:"id"`
	PromptFile string `json:"prompt_file"`
	Content    string `json:"content"`
	OutputFile string `json:"output_file"`
}

type SavedResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filepath"`
}

type FileContent struct {
	Success  bool   `json:"success"`
	Content  string `json:"content"`
	FilePath string `json:"filepath"`
}

// Service implements the operations exposed to the calling agent.
type Service struct {
	dirs   []string
	store  promptstore.Store
	mirror mirror.Mirror
	logger logger.Logger
}

// NewService creates a Service. dirs are re-created before every operation.
func NewService(dirs []string, store promptstore.Store, mir mirror.Mirror, log logger.Logger) *Service {
	return &Service{
		dirs:   dirs,
		store:  store,
		mirror: mir,
		logger: log,
	}
}

// ProcessPromptFile locates the pending prompt. It writes nothing.
func (s *Service) ProcessPromptFile(ctx context.Context) (PendingPrompt, error) {
	if err := workspace.Ensure(s.dirs...); err != nil {
		return PendingPrompt{}, err
	}

	prompt, err := s.store.Locate(ctx)
	if err != nil {
		return PendingPrompt{}, err
	}

	pending := PendingPrompt{
		ID:         prompt.ID,
		PromptFile: prompt.Path,
		Content:    prompt.Content,
		OutputFile: s.store.ResultPath(prompt.Name),
	}
	s.logger.Info(ctx, "Pending prompt %s, output %s", pending.PromptFile, pending.OutputFile)
	return pending, nil
}

func (s *Service) SavePromptResult(ctx context.Context, content, filename string) (SavedResult, error) {
	if filename == "" {
		return SavedResult{}, ErrFilenameRequired
	}
	if err := workspace.Ensure(s.dirs...); err != nil {
		return SavedResult{}, err
	}

	path, err := s.store.Save(ctx, content, filename)
	if err != nil {
		return SavedResult{}, err
	}

	if s.mirror.Enabled() {
		if err := s.mirror.Upload(ctx, mirror.KindResult, path); err != nil {
			s.logger.Warn(ctx, "Failed to mirror %s: %v", path, err)
		}
	}

	return SavedResult{Success: true, FilePath: path}, nil
}

// ReadPromptFile reads filename as-is from the results directory.
func (s *Service) ReadPromptFile(ctx context.Context, filename string) (FileContent, error) {
	return s.read(ctx, filename, s.store.ReadPrompt)
}

// ReadPromptResult reads the saved result for filename from the processed
// directory.
func (s *Service) ReadPromptResult(ctx context.Context, filename string) (FileContent, error) {
	return s.read(ctx, filename, s.store.ReadResult)
}

func (s *Service) read(ctx context.Context, filename string, readFn func(context.Context, string) (promptstore.FileContent, error)) (FileContent, error) {
	if filename == "" {
		return FileContent{}, ErrFilenameRequired
	}
	if err := workspace.Ensure(s.dirs...); err != nil {
		return FileContent{}, err
	}

	file, err := readFn(ctx, filename)
	if err != nil {
		return FileContent{}, err
	}
	return FileContent{Success: true, Content: file.Content, FilePath: file.Path}, nil
}

// AutoProcessPrompt builds the instruction for the pending prompt.
func (s *Service) AutoProcessPrompt(ctx context.Context) (string, error) {
	pending, err := s.ProcessPromptFile(ctx)
	if err != nil {
		return "", err
	}
	return BuildInstruction(pending), nil
}

// BuildInstruction tells the agent which file to work on and where to save.
func BuildInstruction(p PendingPrompt) string {
	return fmt.Sprintf(`Please process the following file according to the instructions it contains:

File: %s

Content:
%s

Save the result to: %s`, p.PromptFile, p.Content, p.OutputFile)
}
