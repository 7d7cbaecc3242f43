package session

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtools/spriterig/internal/builder"
	"github.com/voxtools/spriterig/internal/config"
)

// writeVox writes a minimal one-voxel .vox model to path.
func writeVox(t *testing.T, path string) {
	t.Helper()

	chunk := func(id string, content []byte) []byte {
		var buf bytes.Buffer
		buf.WriteString(id)
		binary.Write(&buf, binary.LittleEndian, uint32(len(content)))
		binary.Write(&buf, binary.LittleEndian, uint32(0))
		buf.Write(content)
		return buf.Bytes()
	}

	var size bytes.Buffer
	for _, v := range []uint32{1, 1, 1} {
		binary.Write(&size, binary.LittleEndian, v)
	}
	children := append(
		chunk("SIZE", size.Bytes()),
		chunk("XYZI", []byte{1, 0, 0, 0, 0, 0, 0, 1})...)

	var file bytes.Buffer
	file.WriteString("VOX ")
	binary.Write(&file, binary.LittleEndian, uint32(150))
	file.WriteString("MAIN")
	binary.Write(&file, binary.LittleEndian, uint32(0))
	binary.Write(&file, binary.LittleEndian, uint32(len(children)))
	file.Write(children)

	require.NoError(t, os.WriteFile(path, file.Bytes(), 0o644))
}

func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", path)
}

func testSetup(t *testing.T) (*config.Config, *builder.Job) {
	t.Helper()
	dir := t.TempDir()
	model := filepath.Join(dir, "model.vox")
	writeVox(t, model)

	cfg := config.Default()
	cfg.Viewer.Disabled = true
	cfg.Output = filepath.Join(dir, "output.png")
	cfg.Watch.Debounce = "50ms"

	job := &builder.Job{
		ModelPath:  model,
		FrontPath:  "front.png",
		BackPath:   "back.png",
		OutputPath: cfg.Output,
	}
	return cfg, job
}

func TestRunOnce(t *testing.T) {
	cfg, job := testSetup(t)

	s, err := New(cfg, job)
	require.NoError(t, err)
	defer s.Close()

	result, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.FileExists(t, cfg.Output)
}

func TestRun_RebuildsOnModelChange(t *testing.T) {
	cfg, job := testSetup(t)

	s, err := New(cfg, job)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Initial build completes before anything else.
	waitForFile(t, cfg.Output)
	require.NoError(t, os.Remove(cfg.Output))

	// Touching the model re-issues the identical build.
	writeVox(t, job.ModelPath)
	waitForFile(t, cfg.Output)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancel")
	}
}

func TestRun_KeepsWatchingAfterBuildFailure(t *testing.T) {
	cfg, job := testSetup(t)

	s, err := New(cfg, job)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	waitForFile(t, cfg.Output)
	require.NoError(t, os.Remove(cfg.Output))

	// A broken model fails the cycle; the loop must keep watching.
	require.NoError(t, os.WriteFile(job.ModelPath, []byte("garbage"), 0o644))
	time.Sleep(500 * time.Millisecond)
	assert.NoFileExists(t, cfg.Output)

	// A fixed model builds again on the next cycle.
	writeVox(t, job.ModelPath)
	waitForFile(t, cfg.Output)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancel")
	}
}

func TestRun_InitialBuildFailureAborts(t *testing.T) {
	cfg, job := testSetup(t)
	require.NoError(t, os.WriteFile(job.ModelPath, []byte("garbage"), 0o644))

	s, err := New(cfg, job)
	require.NoError(t, err)
	defer s.Close()

	err = s.Run(context.Background())
	assert.ErrorContains(t, err, "initial build")
}

func TestNew_UnresolvableBuilder(t *testing.T) {
	cfg, job := testSetup(t)
	cfg.Builder.Kind = config.BuilderKindExec // no command configured

	_, err := New(cfg, job)
	assert.ErrorIs(t, err, builder.ErrNotFound)
}
