package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yludeuk/svoyak/pkg/pipeline"
	"github.com/yludeuk/svoyak/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Input gathers what a run produced. It is assembled by the caller to keep
// this package free of CLI concerns.
type Input struct {
	Source    string
	Result    *pipeline.Result
	Artifacts []storage.Artifact
	SQLite    string
	Now       time.Time
}

// Build creates the manifest for a run.
func Build(in Input) RunManifest {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	res := in.Result

	m := RunManifest{
		GeneratedAt:    now.Format(time.RFC3339),
		Source:         in.Source,
		Language:       string(res.Language.Language),
		LanguageDetect: res.Language.Detected,
		ThemesDetected: len(res.Themes),
		ThemesKept:     len(res.Assembled),
		Questions:      res.QuestionCount(),
		Sizes:          res.Sizes,
		SQLite:         in.SQLite,
	}

	type span struct{ start, qstart int }
	kept := make(map[span]bool, len(res.Assembled))
	for _, a := range res.Assembled {
		kept[span{a.Theme.Start, a.Theme.QStart}] = true
	}
	for _, t := range res.Themes {
		if !kept[span{t.Start, t.QStart}] {
			m.ThemesDropped = append(m.ThemesDropped, t.Name)
		}
	}

	files := make(map[int][]FileSummary)
	for _, a := range in.Artifacts {
		files[a.BlockIndex] = append(files[a.BlockIndex], FileSummary{
			Path:      a.Path,
			Format:    a.Format,
			SizeBytes: a.SizeBytes,
			Size:      humanize.Bytes(uint64(a.SizeBytes)),
			Replaced:  a.Replaced,
		})
	}

	for _, b := range res.Blocks {
		r := RoundSummary{
			Index:     b.Index,
			Questions: b.QuestionCount(),
			Files:     files[b.Index],
		}
		for _, t := range b.Themes {
			r.Themes = append(r.Themes, fmt.Sprintf("%d. %s", t.Number, t.Theme.Name))
		}
		m.Rounds = append(m.Rounds, r)
	}

	return m
}

// Path returns <dir>/<prefix>_manifest.yaml.
func Path(dir, prefix string) string {
	return filepath.Join(dir, prefix+"_manifest.yaml")
}

// Generate builds the manifest and saves it under dir.
// Returns the path to the generated manifest file.
func Generate(dir, prefix string, in Input, s *storage.Storage) (string, error) {
	data, err := yaml.Marshal(Build(in))
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	path := Path(dir, prefix)
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}
