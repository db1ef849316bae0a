// Package editor launches the user's text editor on the namecheck config file.
package editor

import (
	"io"
	"os"
	"os/exec"

	"github.com/thoreinstein/namecheck/internal/errors"
)

// Editor runs an editor process attached to the given streams.
type Editor struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the editor on path and waits for it to exit.
// The command comes from $EDITOR, then $VISUAL, then nano, then vi.
func (e *Editor) Open(path string) error {
	cmd := exec.Command(Detect(), path)
	cmd.Stdin = e.In
	cmd.Stdout = e.Out
	cmd.Stderr = e.Err

	return errors.Wrap(cmd.Run(), "running editor")
}

// Detect returns the editor command to use.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
