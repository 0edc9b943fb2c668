package parse

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/backendtest"
	"github.com/malonaz/urlreader/internal/configuration"
)

func TestParse(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()
	backend.AddPage("https://example.com", backendtest.Page{Title: "Example", Content: "A short summary"})
	t.Setenv(configuration.EnvAPIBaseURL, backend.BaseURL())
	t.Setenv(configuration.EnvLanguage, "en")

	config, err := configuration.Default()
	require.NoError(t, err)
	a, err := app.NewApp(config)
	require.NoError(t, err)

	output := &bytes.Buffer{}
	previousOutput, previousNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = output, true
	defer func() { color.Output, color.NoColor = previousOutput, previousNoColor }()

	run := func(args ...string) error {
		cmd := NewCmd(a)
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		return cmd.ExecuteContext(context.Background())
	}

	require.NoError(t, run("--raw", "https://example.com"))
	require.Contains(t, output.String(), "Example\n")
	require.Contains(t, output.String(), "A short summary\n")
	require.Contains(t, output.String(), "      Title      ")
	require.Contains(t, output.String(), "      Summary      ")

	err = run("--raw", "   ")
	require.EqualError(t, err, "url is required")
	require.Equal(t, 1, backend.Requests("parse"))

	backend.Fail("parse", 502, "fetch failed")
	err = run("https://example.com")
	require.EqualError(t, err, "Parse failed: status 502: fetch failed")
}
