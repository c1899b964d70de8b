package tools

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolProcessPromptFile = "process_prompt_file"
	ToolSavePromptResult  = "save_prompt_result"
	ToolReadPromptFile    = "read_prompt_file"
	ToolReadPromptResult  = "read_prompt_result"
	PromptAutoProcess     = "auto_process_prompt"
)

// Register adds the tools and the auto_process_prompt prompt to s.
// Operation failures are returned as tool errors, never as protocol errors.
func Register(s *server.MCPServer, svc *Service) {
	h := &handlers{svc: svc}

	s.AddTool(mcp.NewTool(ToolProcessPromptFile,
		mcp.WithDescription("Locate the pending *_prompt.txt file and return its id, path, content and the path its result should be saved to."),
	), h.processPromptFile)

	s.AddTool(mcp.NewTool(ToolSavePromptResult,
		mcp.WithDescription("Save the result for a processed prompt. The _prompt.txt suffix of filename is replaced by _result.txt."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Result text to store")),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the prompt file, e.g. meeting_prompt.txt")),
	), h.savePromptResult)

	s.AddTool(mcp.NewTool(ToolReadPromptFile,
		mcp.WithDescription("Read a file from the results directory."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the file to read")),
	), h.readPromptFile)

	s.AddTool(mcp.NewTool(ToolReadPromptResult,
		mcp.WithDescription("Read a saved result from the processed directory. Accepts the prompt or the result file name."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the prompt or result file")),
	), h.readPromptResult)

	s.AddPrompt(mcp.NewPrompt(PromptAutoProcess,
		mcp.WithPromptDescription("Instruction to process the pending prompt file and save its result."),
	), h.autoProcessPrompt)
}

type handlers struct {
	svc *Service
}

func (h *handlers) processPromptFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending, err := h.svc.ProcessPromptFile(ctx)
	return h.result(ctx, req, pending, err)
}

func (h *handlers) savePromptResult(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	saved, err := h.svc.SavePromptResult(ctx, content, filename)
	return h.result(ctx, req, saved, err)
}

func (h *handlers) readPromptFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := h.svc.ReadPromptFile(ctx, filename)
	return h.result(ctx, req, file, err)
}

func (h *handlers) readPromptResult(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := h.svc.ReadPromptResult(ctx, filename)
	return h.result(ctx, req, file, err)
}

func (h *handlers) autoProcessPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	instruction, err := h.svc.AutoProcessPrompt(ctx)
	if err != nil {
		h.svc.logger.Warn(ctx, "%s failed: %v", PromptAutoProcess, err)
		return nil, err
	}

	return mcp.NewGetPromptResult(
		"Process the pending prompt file",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(instruction)),
		},
	), nil
}

// result encodes v as JSON text, or reports err to the caller.
func (h *handlers) result(ctx context.Context, req mcp.CallToolRequest, v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		h.svc.logger.Warn(ctx, "%s failed: %v", req.Params.Name, err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("encode result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
