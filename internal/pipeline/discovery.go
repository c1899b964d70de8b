package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverAudio returns the files in dir whose extension is one of exts,
// sorted. Extensions are matched case-insensitively, like the watcher does.
// A missing dir holds no audio.
func DiscoverAudio(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audio dir: %w", err)
	}

	extensions := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if _, ok := extensions[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
