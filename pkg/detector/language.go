package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/yludeuk/svoyak/models"
)

// sampleLines bounds how much of the transcript is fed to the language model.
const sampleLines = 200

// LanguageResult is the outcome of transcript language detection.
type LanguageResult struct {
	Language   models.Language
	Confidence float64 // 0-1, as reported by lingua
	Detected   bool    // false when the fallback was used
}

// LanguageDetector guesses the transcript language among the supported vocabularies.
type LanguageDetector struct {
	detector lingua.LanguageDetector
	fallback models.Language
}

// NewLanguageDetector builds a detector restricted to Russian and English.
func NewLanguageDetector() *LanguageDetector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Russian, lingua.English).
		Build()
	return &LanguageDetector{detector: d, fallback: models.LanguageRussian}
}

// Detect classifies the first non-blank lines of a transcript.
// An empty or undecidable sample yields the Russian fallback.
func (d *LanguageDetector) Detect(lines []string) LanguageResult {
	var b strings.Builder
	n := 0
	for _, line := range lines {
		if n == sampleLines {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
		n++
	}

	sample := b.String()
	if sample == "" {
		return LanguageResult{Language: d.fallback}
	}

	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return LanguageResult{Language: d.fallback}
	}

	result := LanguageResult{
		Confidence: d.detector.ComputeLanguageConfidence(sample, lang),
		Detected:   true,
	}
	switch lang {
	case lingua.English:
		result.Language = models.LanguageEnglish
	default:
		result.Language = models.LanguageRussian
	}
	return result
}

// Resolve returns the configured language, detecting it when set to auto.
func (d *LanguageDetector) Resolve(configured models.Language, lines []string) LanguageResult {
	switch configured {
	case models.LanguageRussian, models.LanguageEnglish:
		return LanguageResult{Language: configured, Confidence: 1, Detected: false}
	}
	return d.Detect(lines)
}
