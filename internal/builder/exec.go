package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/voxtools/spriterig/internal/mapsafe"
)

// CommandRunner is the interface for running external build commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// ExecCommandRunner uses os/exec.
type ExecCommandRunner struct{}

// Run runs a command, wiring its output to the given writers.
func (ExecCommandRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// ExecBuilder delegates builds to an external command. The job's
// model, front and back paths are appended to the configured argv as
// the last three arguments, in that order and unmodified. The
// command's own output goes straight to the terminal and its exit
// status is propagated without classification or retries.
type ExecBuilder struct {
	command []string
	timeout time.Duration
	runner  CommandRunner

	Stdout io.Writer
	Stderr io.Writer
}

// NewExecBuilder creates an exec builder for the given command argv.
// Params may carry "timeout" as a duration string.
func NewExecBuilder(command []string, params map[string]any) (*ExecBuilder, error) {
	if len(command) == 0 {
		return nil, ErrNoCommand
	}
	return &ExecBuilder{
		command: command,
		timeout: mapsafe.Get(params, "timeout", time.Duration(0)),
		runner:  ExecCommandRunner{},
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}, nil
}

// NewExecBuilderWithRunner creates an exec builder with a custom runner.
func NewExecBuilderWithRunner(command []string, runner CommandRunner) (*ExecBuilder, error) {
	b, err := NewExecBuilder(command, nil)
	if err != nil {
		return nil, err
	}
	b.runner = runner
	return b, nil
}

// Kind returns the exec builder identifier.
func (b *ExecBuilder) Kind() Kind {
	return KindExec
}

// Build runs the external command once for the job.
func (b *ExecBuilder) Build(ctx context.Context, job *Job) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	args := append(append([]string{}, b.command[1:]...), job.Args()...)

	if err := b.runner.Run(ctx, b.command[0], args, b.Stdout, b.Stderr); err != nil {
		return nil, fmt.Errorf("builder: %s failed: %w", b.command[0], err)
	}

	return &Result{
		RunID:      uuid.NewString(),
		OutputPath: job.OutputPath,
		Duration:   time.Since(start),
	}, nil
}

// Close implements Builder; the exec builder holds no resources.
func (b *ExecBuilder) Close() error {
	return nil
}
