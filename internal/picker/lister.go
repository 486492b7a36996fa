package picker

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Lister enumerates the files of a working directory.
type Lister interface {
	List(ctx context.Context, workDir string) ([]string, error)
}

// CommandLister runs an external command in workDir and reads one path
// per output line. Relative paths are resolved against workDir and
// blank lines are dropped.
type CommandLister struct {
	Command []string
}

func (l CommandLister) List(ctx context.Context, workDir string) ([]string, error) {
	if len(l.Command) == 0 {
		return nil, fmt.Errorf("no listing command configured")
	}
	cmd := exec.CommandContext(ctx, l.Command[0], l.Command[1:]...)
	cmd.Dir = workDir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("listing command %q: %w", l.Command[0], err)
	}

	lines := strings.Split(string(out), "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(workDir, line)
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// DefaultListingCommand picks the best available enumerator: fd, then
// ripgrep, then find.
func DefaultListingCommand() []string {
	if _, err := exec.LookPath("fd"); err == nil {
		return []string{"fd", "--type", "f", "--hidden", "--exclude", ".git"}
	}
	if _, err := exec.LookPath("rg"); err == nil {
		return []string{"rg", "--files", "--hidden", "--glob", "!.git"}
	}
	return []string{"find", ".", "-type", "f", "-not", "-path", "*/.git/*"}
}

// StaticLister serves a fixed path list; used in tests and by hosts
// that enumerate files themselves.
type StaticLister struct {
	Paths []string
}

func (l StaticLister) List(context.Context, string) ([]string, error) {
	return l.Paths, nil
}
