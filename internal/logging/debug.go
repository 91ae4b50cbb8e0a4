package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	EnvDebug     = "TAREFAS_DEBUG"
	DebugLogName = "debug.log"
)

var active bool

// EnvEnabled reports whether TAREFAS_DEBUG asks for debug logging.
func EnvEnabled() bool {
	return os.Getenv(EnvDebug) != ""
}

// Setup sends the standard logger to debug.log in dir. The terminal belongs to
// the UI, so nothing is logged until Setup succeeds.
func Setup(dir string) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(filepath.Join(dir, DebugLogName), "tarefas")
	if err != nil {
		return nil, err
	}
	active = true
	return closer{f}, nil
}

func Active() bool {
	return active
}

func Debugf(format string, args ...any) {
	if active {
		log.Printf(format, args...)
	}
}

type closer struct {
	f *os.File
}

func (c closer) Close() error {
	active = false
	log.SetOutput(io.Discard)
	return c.f.Close()
}
