package ports

import "os/exec"

// EditorOpener opens files in an external editor
type EditorOpener interface {
	// OpenFile opens path in the user's editor, positioned at line (1-based, 0 = top)
	OpenFile(path string, line int) error

	// Command returns the exec.Cmd that OpenFile would run.
	// Used with bubbletea's ExecProcess.
	Command(path string, line int) (*exec.Cmd, error)
}
