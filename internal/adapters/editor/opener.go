package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Opener implements ports.EditorOpener
type Opener struct {
	// lookup resolves the editor; replaced in tests
	lookup func() string
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: findEditor}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string, line int) error {
	cmd, err := o.Command(path, line)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editors that understand +N start at that line.
func (o *Opener) Command(path string, line int) (*exec.Cmd, error) {
	editor := o.lookup()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	args := append([]string{}, fields[1:]...)
	args = append(args, lineArgs(fields[0], path, line)...)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// lineArgs builds the file arguments for editor, positioned at line when supported
func lineArgs(editor, path string, line int) []string {
	if line <= 0 {
		return []string{path}
	}
	switch filepath.Base(editor) {
	case "nvim", "vim", "vi", "nano", "emacs", "hx", "micro", "kak":
		return []string{fmt.Sprintf("+%d", line), path}
	case "code", "cursor", "zed":
		return []string{"--goto", fmt.Sprintf("%s:%d", path, line)}
	default:
		return []string{path}
	}
}

// findEditor returns the editor to use
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
