package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yludeuk/svoyak/models"
)

func TestLanguageDetectorResolve(t *testing.T) {
	d := NewLanguageDetector()

	russian := []string{
		"Тема 1. Великие реки",
		"10. Эта река протекает через Москву и дала городу своё название.",
		"Ответ: Москва-река",
	}
	english := []string{
		"Theme 1. Great rivers",
		"10. This river flows through London and past the Houses of Parliament.",
		"Answer: the Thames",
	}

	tests := []struct {
		name       string
		configured models.Language
		lines      []string
		want       models.Language
		detected   bool
	}{
		{name: "auto russian", configured: models.LanguageAuto, lines: russian, want: models.LanguageRussian, detected: true},
		{name: "auto english", configured: models.LanguageAuto, lines: english, want: models.LanguageEnglish, detected: true},
		{name: "explicit overrides detection", configured: models.LanguageRussian, lines: english, want: models.LanguageRussian, detected: false},
		{name: "empty transcript falls back", configured: models.LanguageAuto, lines: []string{"", "  "}, want: models.LanguageRussian, detected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Resolve(tt.configured, tt.lines)
			assert.Equal(t, tt.want, got.Language)
			assert.Equal(t, tt.detected, got.Detected)
		})
	}
}
