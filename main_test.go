package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTranscript(t *testing.T, dir string, themes int) string {
	t.Helper()
	lines := []string{"Пакет для турнира", ""}
	for i := 1; i <= themes; i++ {
		lines = append(lines, fmt.Sprintf("Тема %d. Предмет %d", i, i), "Автор: Редакция", "")
		for _, p := range []int{10, 20, 30, 40, 50} {
			lines = append(lines,
				fmt.Sprintf("%d. Вопрос номер %d темы %d про что-то интересное?", p, p/10, i),
				fmt.Sprintf("Ответ: ответ %d", p),
				"",
			)
		}
	}
	path := filepath.Join(dir, "pack.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"svoyak"}, args...))
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, 20)
	outDir := filepath.Join(dir, "out")
	dbPath := filepath.Join(dir, "pack.db")

	out, err := run(t, "build", "--input", input, "--language", "ru", "--out-dir", outDir,
		"--prefix", "final", "--format", "txt,md,docx", "--sqlite", dbPath, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Themes:   20 detected, 20 kept")
	assert.Contains(t, out, "Blocks:   10, 10")

	for _, name := range []string{"final_1.txt", "final_2.txt", "final_1.md", "final_2.docx", "final_manifest.yaml"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	text, err := os.ReadFile(filepath.Join(outDir, "final_2.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "11. Предмет 11\n\n10. Вопрос номер 1 темы 11"))

	data, err := os.ReadFile(filepath.Join(outDir, "final_manifest.yaml"))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, 100, m["questions"])

	out, err = run(t, "db", "rounds", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 rounds")

	out, err = run(t, "db", "round", dbPath, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "11. Предмет 11")
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, 3)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "build", "--input", input, "--language", "ru", "--out-dir", outDir, "--dry-run", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Blocks:   3")
	assert.NoDirExists(t, outDir)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, 3)

	_, err := run(t, "build", "--input", input, "--min", "12", "--max", "9", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run configuration")
}

func TestThemesCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, 2)

	out, err := run(t, "themes", "--input", input, "--language", "ru", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Предмет 1")
	assert.Contains(t, out, "questions: 5")
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "even", args: []string{"--total", "38"}, want: []string{"Sizes:  9,9,10,10"}},
		{name: "valid user split", args: []string{"--total", "38", "--split", "10,10,9,9"}, want: []string{"Sizes:  10,10,9,9"}},
		{name: "rejected user split", args: []string{"--total", "38", "--split", "10,10,10,8"}, want: []string{"rejected", "Sizes:  9,9,10,10"}},
		{name: "large count", args: []string{"--total", "101"}, want: []string{"Bounds: 10-11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"split"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, 2)

	out, err := run(t, "preview", "--input", input, "--language", "ru", "--block", "1", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Round 1 (2 themes, 10 questions) ===")

	_, err = run(t, "preview", "--input", input, "--language", "ru", "--block", "5", "--quiet")
	assert.Error(t, err)
}

func TestColdstartCommand(t *testing.T) {
	out, err := run(t, "coldstart")
	require.NoError(t, err)
	assert.Contains(t, out, "# svoyak Quick Start")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "commands")
}
