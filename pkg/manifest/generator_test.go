package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/detector"
	"github.com/yludeuk/svoyak/pkg/pipeline"
	"github.com/yludeuk/svoyak/pkg/storage"
	"gopkg.in/yaml.v3"
)

func sampleResult() *pipeline.Result {
	kept := models.AssembledTheme{
		Number:  1,
		Theme:   models.Theme{Num: 1, Name: "Реки", Start: 0, End: 10, QStart: 2},
		Records: []models.QuestionRecord{{Price: 10, NormalizedPrice: 10, Question: "Вопрос?", Answer: "Ответ: да"}},
	}
	return &pipeline.Result{
		Language: detector.LanguageResult{Language: models.LanguageRussian, Confidence: 0.9, Detected: true},
		Themes: []models.Theme{
			kept.Theme,
			{Num: 2, Name: "Заглушка", Start: 10, End: 16, QStart: 11},
		},
		Assembled: []models.AssembledTheme{kept},
		Sizes:     []int{1},
		Blocks:    []models.ThemeBlock{{Index: 1, Themes: []models.AssembledTheme{kept}}},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Build(Input{
		Source: "pack.txt",
		Result: sampleResult(),
		Artifacts: []storage.Artifact{
			{Path: "out/round_1.docx", Format: "docx", BlockIndex: 1, SizeBytes: 2048, Replaced: true},
		},
		Now: now,
	})

	assert.Equal(t, "2026-03-01T12:00:00Z", m.GeneratedAt)
	assert.Equal(t, "ru", m.Language)
	assert.True(t, m.LanguageDetect)
	assert.Equal(t, 2, m.ThemesDetected)
	assert.Equal(t, 1, m.ThemesKept)
	assert.Equal(t, []string{"Заглушка"}, m.ThemesDropped)
	assert.Equal(t, 1, m.Questions)

	require.Len(t, m.Rounds, 1)
	assert.Equal(t, []string{"1. Реки"}, m.Rounds[0].Themes)
	require.Len(t, m.Rounds[0].Files, 1)
	assert.Equal(t, "2.0 kB", m.Rounds[0].Files[0].Size)
	assert.True(t, m.Rounds[0].Files[0].Replaced)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(dir, "round", Input{Result: sampleResult()}, &storage.Storage{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "round_manifest.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got RunManifest
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 2, got.ThemesDetected)
	assert.Equal(t, []int{1}, got.Sizes)
	assert.NotEmpty(t, got.GeneratedAt)
}
