// Package selector picks the canonical five questions of a theme and maps
// their prices onto the standard ladder.
package selector

import (
	"log/slog"
	"slices"

	"github.com/yludeuk/svoyak/models"
)

// SetSize is the number of questions kept per theme.
const SetSize = 5

// Scorer rates a set of prices; higher is better.
type Scorer func(prices []int) int

// Selector chooses the best SetSize-subset of question candidates.
type Selector struct {
	Score Scorer
	// MaxCandidates caps exhaustive search. Above it the first SetSize candidates
	// are kept as they are. Zero disables the cap.
	MaxCandidates int
	Logger        *slog.Logger
}

// New returns a selector using LadderScore.
func New(maxCandidates int, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Selector{Score: LadderScore, MaxCandidates: maxCandidates, Logger: logger}
}

// Select returns candidates unchanged when there are at most SetSize of them.
// Otherwise every SetSize-subset is scored in lexicographic index order and the
// first subset with the strictly greatest score wins. Order within the result
// follows the input.
func (s *Selector) Select(candidates []models.QuestionCandidate) []models.QuestionCandidate {
	if len(candidates) <= SetSize {
		return candidates
	}
	if s.MaxCandidates > 0 && len(candidates) > s.MaxCandidates {
		s.logger().Warn("too many question candidates for exhaustive search, keeping the first five",
			"candidates", len(candidates), "max", s.MaxCandidates)
		return candidates[:SetSize]
	}

	score := s.Score
	if score == nil {
		score = LadderScore
	}

	var best []int
	bestScore := 0
	prices := make([]int, SetSize)
	combinations(len(candidates), SetSize, func(idx []int) {
		for k, i := range idx {
			prices[k] = candidates[i].Price
		}
		sc := score(prices)
		if best == nil || sc > bestScore {
			best = slices.Clone(idx)
			bestScore = sc
		}
	})

	if best == nil {
		return candidates[:SetSize]
	}
	out := make([]models.QuestionCandidate, 0, SetSize)
	for _, i := range best {
		out = append(out, candidates[i])
	}
	s.logger().Debug("best question set selected", "candidates", len(candidates), "score", bestScore)
	return out
}

func (s *Selector) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// combinations calls fn with every k-subset of [0, n) in lexicographic order.
// The slice passed to fn is reused between calls.
func combinations(n, k int, fn func([]int)) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// LadderScore rewards price sets close to a constant-step progression:
// 10 per occurrence of the most frequent step, minus the largest deviation of any
// step from it. Among equally frequent steps the one seen first wins.
func LadderScore(prices []int) int {
	sorted := slices.Clone(prices)
	slices.Sort(sorted)
	if len(sorted) < 2 {
		return 0
	}

	diffs := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		diffs = append(diffs, sorted[i]-sorted[i-1])
	}

	counts := make(map[int]int, len(diffs))
	for _, d := range diffs {
		counts[d]++
	}
	step, count := diffs[0], counts[diffs[0]]
	for _, d := range diffs[1:] {
		if counts[d] > count {
			step, count = d, counts[d]
		}
	}

	penalty := 0
	for _, d := range diffs {
		dev := d - step
		if dev < 0 {
			dev = -dev
		}
		penalty = max(penalty, dev)
	}
	return count*10 - penalty
}
