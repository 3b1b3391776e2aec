package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// maxPreviewSize guards against paging huge files into memory
const maxPreviewSize = 32 << 20

// PagerOps shows files in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowFile opens path in ov. The terminal is handed to ov for the duration
// and restored afterwards.
func (p *PagerOps) ShowFile(path string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("preview %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("preview %s: is a directory", path)
	}
	if info.Size() > maxPreviewSize {
		return fmt.Errorf("preview %s: file too large (%d bytes)", path, info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("preview %s: %w", path, err)
	}
	defer f.Close()

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
