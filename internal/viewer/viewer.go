// Package viewer manages the detached image viewer process.
package viewer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// Error definitions for the viewer package.
var (
	ErrNoCommand = errors.New("viewer command is empty")
)

// stopGrace is how long Stop waits for the viewer to exit after
// SIGTERM before killing it.
const stopGrace = 3 * time.Second

// Manager launches and tracks a single viewer process. The launch is
// fire-and-forget: the viewer runs concurrently with the watch loop
// and its exit, clean or not, is only logged.
type Manager struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// New creates a viewer manager.
func New() *Manager {
	return &Manager{}
}

// Start launches the viewer with target appended as the final
// argument. A viewer that is already running is left alone; viewers
// re-read the output file themselves on each rebuild.
func (m *Manager) Start(command []string, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd != nil {
		return nil
	}
	if len(command) == 0 {
		return ErrNoCommand
	}

	args := append(append([]string{}, command[1:]...), target)
	cmd := exec.Command(command[0], args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("viewer: failed to start %s: %w", command[0], err)
	}

	m.cmd = cmd
	m.done = make(chan struct{})
	slog.Info("Viewer started", "command", command[0], "target", target, "pid", cmd.Process.Pid)

	go m.reap(cmd)
	return nil
}

// reap waits for the child and clears the slot when it exits.
func (m *Manager) reap(cmd *exec.Cmd) {
	err := cmd.Wait()

	m.mu.Lock()
	if m.cmd == cmd {
		m.cmd = nil
		close(m.done)
		m.done = nil
	}
	m.mu.Unlock()

	if err != nil {
		slog.Debug("Viewer exited", "error", err)
	} else {
		slog.Debug("Viewer exited")
	}
}

// Running reports whether a viewer process is alive.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cmd != nil
}

// Stop terminates the viewer: SIGTERM first, SIGKILL after a short
// grace period. Stopping an already-exited viewer is a no-op.
func (m *Manager) Stop() {
	m.mu.Lock()
	cmd, done := m.cmd, m.done
	m.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return
		}
		slog.Debug("Failed to signal viewer", "error", err)
	}

	select {
	case <-done:
	case <-time.After(stopGrace):
		if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			slog.Error("Failed to kill viewer process", "error", err)
		}
		<-done
	}
}
