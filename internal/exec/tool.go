package exec

//go:generate mockgen -source=tool.go -destination=tool_mock.go -package=exec

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ToolChecker finds installed executables such as package managers.
type ToolChecker interface {
	// IsAvailable reports whether tool is an executable on the search path.
	IsAvailable(tool string) bool

	// FindTool returns the first available tool of alternatives, or "".
	FindTool(alternatives ...string) string
}

// ToolOption configures a ToolChecker.
type ToolOption func(*toolChecker)

// WithSearchPath looks tools up in dirs instead of $PATH.
func WithSearchPath(dirs ...string) ToolOption {
	return func(t *toolChecker) {
		t.dirs = dirs
	}
}

type toolChecker struct {
	dirs []string
}

// NewToolChecker creates a ToolChecker searching $PATH.
func NewToolChecker(opts ...ToolOption) *toolChecker {
	t := &toolChecker{}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *toolChecker) IsAvailable(tool string) bool {
	if tool == "" {
		return false
	}

	if len(t.dirs) == 0 {
		_, err := exec.LookPath(tool)

		return err == nil
	}

	for _, dir := range t.dirs {
		info, err := os.Stat(filepath.Join(dir, tool))
		if err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
			return true
		}
	}

	return false
}

func (t *toolChecker) FindTool(alternatives ...string) string {
	for _, tool := range alternatives {
		if t.IsAvailable(tool) {
			return tool
		}
	}

	return ""
}
