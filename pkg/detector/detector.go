// Package detector finds clusters of price-tagged lines and guesses the transcript language.
package detector

import (
	"strings"

	"github.com/yludeuk/svoyak/pkg/rules"
)

const (
	MinPrice = 10
	MaxPrice = 10000
)

// IsQuestionLine reports whether a line, trimmed, opens with a plausible price:
// a multiple of 10 in [MinPrice, MaxPrice] followed by a dot or whitespace.
// Content after the prefix is ignored here.
func IsQuestionLine(line string) bool {
	l, ok := rules.ParseLine(strings.TrimSpace(line))
	if !ok {
		return false
	}
	return l.Price%10 == 0 && l.Price >= MinPrice && l.Price <= MaxPrice
}

// FindQuestionBlock returns the indices of the first blockSize question lines
// in lines[start:start+maxWindow], or nil when fewer qualify inside the window.
func FindQuestionBlock(lines []string, start, blockSize, maxWindow int) []int {
	if start < 0 {
		start = 0
	}
	limit := min(len(lines), start+maxWindow)

	indices := make([]int, 0, blockSize)
	for i := start; i < limit; i++ {
		if !IsQuestionLine(lines[i]) {
			continue
		}
		indices = append(indices, i)
		if len(indices) == blockSize {
			return indices
		}
	}
	return nil
}
