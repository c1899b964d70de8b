package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Execute() = %q, want %q", out, "hello\n")
	}
}

func TestExecuteFailure(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		wantStderr string
		wantMsg    string
	}{
		{
			name:       "stderr kept",
			script:     "echo loading model >&2; echo model not found >&2; exit 3",
			wantStderr: "loading model\nmodel not found",
			wantMsg:    "model not found",
		},
		{
			name:    "silent failure",
			script:  "exit 1",
			wantMsg: "run sh: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Execute(context.Background(), "sh", "-c", tt.script)

			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("Execute() error = %v, want *CommandError", err)
			}
			if cmdErr.Name != "sh" || cmdErr.Stderr != tt.wantStderr {
				t.Errorf("CommandError = %+v", cmdErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err, tt.wantMsg)
			}
			if strings.Contains(err.Error(), "loading model") {
				t.Errorf("Error() = %q carries more than the last stderr line", err)
			}
		})
	}
}

func TestExecuteHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Execute(ctx, "sh", "-c", "sleep 5")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}
