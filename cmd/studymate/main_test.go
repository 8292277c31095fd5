package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate-backend/internal/services"
)

type scriptedOracle struct {
	text    string
	prompts []string
}

func (o *scriptedOracle) Generate(_ context.Context, _, prompt string, _ *services.GenerateOptions) (string, error) {
	o.prompts = append(o.prompts, prompt)
	return o.text, nil
}

func runCLI(t *testing.T, oracle services.Oracle, args ...string) (string, error) {
	t.Helper()

	prev := newOracle
	newOracle = func(context.Context, string) (services.Oracle, func(), error) {
		if oracle == nil {
			return nil, nil, services.ErrMissingAPIKey
		}
		return oracle, func() {}, nil
	}
	t.Cleanup(func() {
		newOracle = prev
		savePath, langFlag, historyDir = "", "en", ""
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFactsCommandPrintsAndRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	oracle := &scriptedOracle{text: `{"facts":["f1","f2","f3","f4","f5"],"related_topics":["r1","r2","r3"]}`}

	out, err := runCLI(t, oracle, "facts", "--history-dir", dir, "Black", "Holes")
	require.NoError(t, err)
	assert.Contains(t, out, `Facts about "Black Holes":`)
	assert.Contains(t, out, "- f5")
	require.Len(t, oracle.prompts, 1)

	out, err = runCLI(t, nil, "history", "list", "--history-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Black Holes\n", out)

	_, err = runCLI(t, nil, "history", "clear", "--history-dir", dir)
	require.NoError(t, err)
	out, err = runCLI(t, nil, "history", "list", "--history-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSummarizeCommandSavesExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(src, []byte("# Cells\nCells divide."), 0o644))
	dest := filepath.Join(dir, "out.txt")
	oracle := &scriptedOracle{text: "Cells split in two."}

	_, err := runCLI(t, oracle, "summarize", "--lang", "hi", "--history-dir", dir, "--save", dest, src)
	require.NoError(t, err)

	saved, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Cells split in two.", string(saved))
	require.Len(t, oracle.prompts, 1)
	assert.Contains(t, oracle.prompts[0], "in Hindi")
	assert.Contains(t, oracle.prompts[0], "Cells divide.")
}

func TestMissingAPIKeyIsReported(t *testing.T) {
	_, err := runCLI(t, nil, "fact-of-the-day", "--history-dir", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, "API Key is invalid or missing. Please check your configuration.", err.Error())
}

func TestBlankExamNameFails(t *testing.T) {
	oracle := &scriptedOracle{}
	_, err := runCLI(t, oracle, "exam", "--history-dir", t.TempDir(), "  ")
	require.Error(t, err)
	assert.Equal(t, "Please enter an exam name.", err.Error())
	assert.Empty(t, oracle.prompts)
}
