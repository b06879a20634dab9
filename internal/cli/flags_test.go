package cli

import (
	stderrors "errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/errors"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitError)
	assert.Equal(t, 2, ExitInvalidInput)
}

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", OutputText)
	assert.Equal(t, "json", OutputJSON)
	assert.Equal(t, []string{"text", "json"}, ValidOutputFormats())
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("xml"))
	assert.False(t, IsValidOutputFormat(""))
}

func TestGlobalFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	assert.Equal(t, OutputText, flags.Output)
	assert.False(t, flags.Verbose)
	assert.False(t, flags.Quiet)
	assert.Empty(t, flags.File)
}

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	outputFlag := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, OutputText, outputFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	quietFlag := cmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, quietFlag)
	assert.Equal(t, "q", quietFlag.Shorthand)

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", stderrors.New("boom"), ExitError},
		{"file access error", errors.ErrFileAccess, ExitError},
		{"exit code 2 wrapper", errors.NewExitCode2Error(stderrors.New("bad input")), ExitInvalidInput},
		{"invalid output format", errors.ErrInvalidOutputFormat, ExitInvalidInput},
		{"empty description", errors.ErrEmptyDescription, ExitInvalidInput},
		{"invalid priority", errors.Wrap(errors.ErrInvalidPriority, "rank 9"), ExitInvalidInput},
		{"invalid date", errors.ErrInvalidDate, ExitInvalidInput},
		{"invalid sort key", errors.ErrInvalidSortKey, ExitInvalidInput},
		{"cobra unknown flag", stderrors.New("unknown flag: --bogus"), ExitInvalidInput},
		{"cobra unknown command", stderrors.New(`unknown command "frob" for "taskdeck"`), ExitInvalidInput},
		{"cobra mutually exclusive", stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"), ExitInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ExitCodeForError(tc.err))
		})
	}
}
