package examples

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/pylist/internal/config"
)

// ColorEnabled decides whether headings written to f are colored.
// In auto mode colors need a terminal and no NO_COLOR in the environment.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv(config.NoColorEnv); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func cyan(s string) string {
	return "\033[36m" + s + "\033[39m"
}

func bold(s string) string {
	return "\033[1m" + s + "\033[22m"
}
