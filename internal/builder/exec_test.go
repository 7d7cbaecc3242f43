package builder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock types ---

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	callArgs := m.Called(ctx, name, args, stdout, stderr)
	return callArgs.Error(0)
}

func testJob() *Job {
	return &Job{
		ModelPath:  "model.vox",
		FrontPath:  "front.png",
		BackPath:   "back.png",
		OutputPath: "output.png",
	}
}

// --- Tests ---

func TestExecBuilder_ForwardsArgumentsVerbatim(t *testing.T) {
	runner := new(MockRunner)
	b, err := NewExecBuilderWithRunner([]string{"mybuild", "--fast"}, runner)
	require.NoError(t, err)

	// The three paths arrive after the configured argv, in exactly
	// model, front, back order.
	runner.On("Run", mock.Anything, "mybuild",
		[]string{"--fast", "model.vox", "front.png", "back.png"},
		mock.Anything, mock.Anything).Return(nil).Once()

	result, err := b.Build(context.Background(), testJob())
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "output.png", result.OutputPath)

	runner.AssertExpectations(t)
}

func TestExecBuilder_PropagatesFailureWithoutRetry(t *testing.T) {
	runner := new(MockRunner)
	b, err := NewExecBuilderWithRunner([]string{"mybuild"}, runner)
	require.NoError(t, err)

	runner.On("Run", mock.Anything, "mybuild", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("exit status 2"))

	result, err := b.Build(context.Background(), testJob())
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "exit status 2")

	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestExecBuilder_RejectsEmptyArguments(t *testing.T) {
	runner := new(MockRunner)
	b, err := NewExecBuilderWithRunner([]string{"mybuild"}, runner)
	require.NoError(t, err)

	job := testJob()
	job.FrontPath = ""

	_, err = b.Build(context.Background(), job)
	assert.ErrorIs(t, err, ErrEmptyArgument)

	runner.AssertNotCalled(t, "Run")
}

func TestExecBuilder_RequiresCommand(t *testing.T) {
	_, err := NewExecBuilder(nil, nil)
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestExecCommandRunner(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := ExecCommandRunner{}.Run(context.Background(), "sh",
		[]string{"-c", "echo built"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "built\n", stdout.String())

	err = ExecCommandRunner{}.Run(context.Background(), "sh",
		[]string{"-c", "exit 7"}, &stdout, &stderr)
	assert.Error(t, err)
}
