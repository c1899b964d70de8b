package composer

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Placeholder is replaced by the transcript text.
const Placeholder = "{transcript}"

var ErrTemplateNotFound = errors.New("template not found")

// Composer builds summary prompts from a template file.
type Composer interface {
	Compose(transcript string) (string, error)
}

type implComposer struct {
	templatePath string
}

// New creates a Composer reading templatePath on every call, so edits to the
// template apply without a restart.
func New(templatePath string) Composer {
	return &implComposer{templatePath: templatePath}
}

// Compose substitutes transcript for every Placeholder in the template in a
// single pass; placeholders inside the transcript are left as-is.
func (c *implComposer) Compose(transcript string) (string, error) {
	data, err := os.ReadFile(c.templatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, c.templatePath)
		}
		return "", fmt.Errorf("read template: %w", err)
	}

	return strings.ReplaceAll(string(data), Placeholder, transcript), nil
}
