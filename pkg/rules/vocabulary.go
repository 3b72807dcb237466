// Package rules holds the marker vocabularies and the ordered rejection rules
// that decide whether a price-prefixed line opens a question.
package rules

import (
	"strconv"
	"strings"

	"github.com/yludeuk/svoyak/models"
)

// Vocabulary is the set of language-specific markers used by the heuristics.
type Vocabulary struct {
	Language models.Language

	// ServiceMarkers are token prefixes of administrative lines (source, commentary, judgments).
	ServiceMarkers []string
	// ServiceKeywords are whole tokens naming rounds, themes and credits.
	ServiceKeywords map[string]struct{}
	// AuthorMarkers are lower-case prefixes of author credit lines above a theme header.
	AuthorMarkers []string
	// ThemeKeyword introduces a theme header ("Тема 3. ...").
	ThemeKeyword string
	// AnswerMarkers are literal line prefixes opening an answer block.
	AnswerMarkers []string
}

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Russian returns the vocabulary of Russian-language transcripts.
func Russian() Vocabulary {
	return Vocabulary{
		Language: models.LanguageRussian,
		ServiceMarkers: []string{
			"http", "Источник", "Комментарий", "Зачет", "Зачёт", "Незачет", "Незачёт", "Ответ",
		},
		ServiceKeywords: keywordSet(
			"Раунд", "Тема", "Полуоткрытый", "Открытый",
			"Закрытый", "Блок", "Четвертьфинал", "Полуфинал", "Финал",
			"Автор", "Авторы", "Редакторы",
		),
		AuthorMarkers: []string{"автор"},
		ThemeKeyword:  "Тема",
		AnswerMarkers: []string{"Ответ:"},
	}
}

// English returns the vocabulary of English-language transcripts.
func English() Vocabulary {
	return Vocabulary{
		Language: models.LanguageEnglish,
		ServiceMarkers: []string{
			"http", "Source", "Comment", "Accept", "Reject", "Answer",
		},
		ServiceKeywords: keywordSet(
			"Round", "Theme", "Topic", "Semi-open", "Open",
			"Closed", "Block", "Quarterfinal", "Semifinal", "Final",
			"Author", "Authors", "Editor", "Editors",
		),
		AuthorMarkers: []string{"author"},
		ThemeKeyword:  "Theme",
		AnswerMarkers: []string{"Answer:"},
	}
}

// For returns the vocabulary of a language; anything but English gets Russian.
func For(lang models.Language) Vocabulary {
	if lang == models.LanguageEnglish {
		return English()
	}
	return Russian()
}

// IsAuthorLine reports whether a line is an author credit, case-insensitively.
func (v Vocabulary) IsAuthorLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, m := range v.AuthorMarkers {
		if strings.HasPrefix(lower, m) {
			return true
		}
	}
	return false
}

// IsAnswerLine reports whether a line literally begins with an answer marker.
func (v Vocabulary) IsAnswerLine(line string) bool {
	for _, m := range v.AnswerMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// IsServiceKeyword reports whether a token is an extended administrative keyword.
func (v Vocabulary) IsServiceKeyword(token string) bool {
	_, ok := v.ServiceKeywords[token]
	return ok
}

// FallbackThemeName synthesizes a theme name from its running number.
func (v Vocabulary) FallbackThemeName(num int) string {
	return v.ThemeKeyword + " " + strconv.Itoa(num)
}
