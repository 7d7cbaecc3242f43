package viewer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitNotRunning(t *testing.T, m *Manager) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !m.Running() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("viewer still running")
}

func TestStartAppendsTarget(t *testing.T) {
	out := filepath.Join(t.TempDir(), "argv.txt")
	m := New()

	// The target arrives as the final argument, here captured as $0.
	err := m.Start([]string{"sh", "-c", `printf %s "$0" > ` + out}, "output.png")
	require.NoError(t, err)

	waitNotRunning(t, m)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "output.png", string(data))
}

func TestStartIsFireAndForget(t *testing.T) {
	m := New()
	require.NoError(t, m.Start([]string{"sleep", "10"}, "output.png"))
	assert.True(t, m.Running())

	// A second start while a viewer lives is a no-op.
	require.NoError(t, m.Start([]string{"sleep", "10"}, "output.png"))

	start := time.Now()
	m.Stop()
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.False(t, m.Running())
}

func TestStartErrors(t *testing.T) {
	m := New()

	assert.ErrorIs(t, m.Start(nil, "output.png"), ErrNoCommand)
	assert.Error(t, m.Start([]string{"definitely-not-a-binary-xyz"}, "output.png"))
}

func TestStopWithoutStart(t *testing.T) {
	New().Stop() // must not panic or block
}

func TestViewerCrashOnlyClearsSlot(t *testing.T) {
	m := New()
	require.NoError(t, m.Start([]string{"sh", "-c", "exit 3"}, "output.png"))

	// The non-zero exit is reaped quietly; the manager is reusable.
	waitNotRunning(t, m)
	require.NoError(t, m.Start([]string{"sh", "-c", "exit 0"}, "output.png"))
	waitNotRunning(t, m)
}
