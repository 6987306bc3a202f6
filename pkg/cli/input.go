package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// source is one debug description to parse.
type source struct {
	Name    string
	Content string
}

// readSources reads every argument as a file or glob. No arguments, or a
// lone "-", reads stdin.
func readSources(args []string, stdin io.Reader) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var sources []source
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			sources = append(sources, source{Name: "stdin", Content: string(data)})
			continue
		}

		paths, err := expandPath(arg)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			data, err := os.ReadFile(p) //#nosec G304 -- user-provided dump file
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", p, err)
			}
			sources = append(sources, source{Name: p, Content: string(data)})
		}
	}
	return sources, nil
}

// expandPath resolves a glob such as "dumps/**/*.txt". Plain paths are
// returned as given so a missing file is reported by name.
func expandPath(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func hasMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
