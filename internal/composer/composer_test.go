package composer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		transcript string
		want       string
	}{
		{"simple", "Summary: {transcript}", "hello world", "Summary: hello world"},
		{"no placeholder", "Static text", "ignored", "Static text"},
		{"placeholder twice", "{transcript} / {transcript}", "a", "a / a"},
		{"no recursive substitution", "T: {transcript}", "say {transcript}", "T: say {transcript}"},
		{"multiline", "Header\n\n{transcript}\n\nFooter", "line1\nline2", "Header\n\nline1\nline2\n\nFooter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(writeTemplate(t, tt.template))
			got, err := c.Compose(tt.transcript)
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeTemplateNotFound(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := c.Compose("x")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Compose() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestComposeRereadsTemplate(t *testing.T) {
	path := writeTemplate(t, "v1 {transcript}")
	c := New(path)

	if got, _ := c.Compose("x"); got != "v1 x" {
		t.Fatalf("first Compose() = %q", got)
	}
	if err := os.WriteFile(path, []byte("v2 {transcript}"), 0644); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Compose("x"); got != "v2 x" {
		t.Errorf("second Compose() = %q, want v2 x", got)
	}
}
