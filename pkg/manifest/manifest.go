package manifest

// RunManifest is the YAML summary written next to the exported rounds.
// It gives an overview of what was detected, dropped and written without
// opening the documents themselves.
type RunManifest struct {
	GeneratedAt    string         `yaml:"generated_at"`
	Source         string         `yaml:"source,omitempty"`
	Language       string         `yaml:"language"`
	LanguageDetect bool           `yaml:"language_detected"`
	ThemesDetected int            `yaml:"themes_detected"`
	ThemesKept     int            `yaml:"themes_kept"`
	ThemesDropped  []string       `yaml:"themes_dropped,omitempty"`
	Questions      int            `yaml:"questions"`
	Sizes          []int          `yaml:"sizes"`
	Rounds         []RoundSummary `yaml:"rounds"`
	SQLite         string         `yaml:"sqlite,omitempty"`
}

// RoundSummary describes one exported block and its files.
type RoundSummary struct {
	Index     int           `yaml:"index"`
	Themes    []string      `yaml:"themes"`
	Questions int           `yaml:"questions"`
	Files     []FileSummary `yaml:"files,omitempty"`
}

// FileSummary is one rendered artifact.
type FileSummary struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`
	SizeBytes int64  `yaml:"size_bytes"`
	Size      string `yaml:"size"`
	Replaced  bool   `yaml:"replaced,omitempty"`
}
