package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	output := &bytes.Buffer{}
	previousOutput, previousNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = output, true
	t.Cleanup(func() { color.Output, color.NoColor = previousOutput, previousNoColor })
	return output
}

func TestTitleKeepsPercentSigns(t *testing.T) {
	output := captureOutput(t)
	Title("%s", "100% read")
	require.Contains(t, output.String(), "      100% read      ")
	require.NotContains(t, output.String(), "%!")
}

func TestAIOutputWithoutArgs(t *testing.T) {
	output := captureOutput(t)
	AIOutput("50% done\n")
	require.Equal(t, "50% done\n", output.String())
}
