package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.vox")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))
	return path
}

func waitForEvent(t *testing.T, events <-chan struct{}) {
	t.Helper()
	select {
	case _, ok := <-events:
		require.True(t, ok, "events channel closed before a change arrived")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherDeliversChange(t *testing.T) {
	path := tempModel(t)
	w := New(path, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	waitForEvent(t, events)

	assert.GreaterOrEqual(t, w.FireCount(), uint32(1))
}

func TestWatcherSurvivesReplace(t *testing.T) {
	// Editors commonly save by writing a sibling file and renaming it
	// over the original.
	path := tempModel(t)
	w := New(path, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	require.NoError(t, err)

	replacement := path + ".tmp"
	require.NoError(t, os.WriteFile(replacement, []byte("v2"), 0o644))
	require.NoError(t, os.Rename(replacement, path))

	waitForEvent(t, events)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path := tempModel(t)
	w := New(path, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	require.NoError(t, err)

	sibling := filepath.Join(filepath.Dir(path), "other.vox")
	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0o644))

	select {
	case <-events:
		t.Fatal("change to a sibling file must not fire")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	path := tempModel(t)
	w := New(path, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	waitForEvent(t, events)

	// The burst lands inside one debounce window.
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, uint32(1), w.FireCount())
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := tempModel(t)
	w := New(path, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := w.Start(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "events channel should close on cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("events channel did not close after cancel")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "model.vox"), 50*time.Millisecond)

	_, err := w.Start(context.Background())
	assert.Error(t, err)
}
