// Package partition regroups an ordered theme list into contiguous blocks of bounded size.
package partition

import (
	"slices"

	"github.com/yludeuk/svoyak/models"
)

// LargeBounds apply once the theme count exceeds the large threshold.
var LargeBounds = Bounds{Min: 10, Max: 11}

// Bounds is the inclusive block size range.
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether size lies within the bounds.
func (b Bounds) Contains(size int) bool {
	return size >= b.Min && size <= b.Max
}

// For returns the bounds in force for total themes: LargeBounds beyond
// largeThreshold, b otherwise. A zero threshold disables the switch.
func (b Bounds) For(total, largeThreshold int) Bounds {
	if largeThreshold > 0 && total > largeThreshold {
		return LargeBounds
	}
	return b
}

// CheckUserSplit reports whether split sums to total with every size within bounds.
func CheckUserSplit(split []int, total int, b Bounds) bool {
	sum := 0
	for _, s := range split {
		if !b.Contains(s) {
			return false
		}
		sum += s
	}
	return sum == total
}

// EvenSplit searches block counts upward from total/b.Max and returns the first
// near-even distribution whose sizes all fit the bounds, sorted ascending.
// When no count fits, it falls back to full b.Max blocks plus one remainder block.
func EvenSplit(total int, b Bounds) []int {
	if total <= 0 || b.Max <= 0 {
		return nil
	}
	hi := total + 1
	if b.Min > 0 {
		hi = total/b.Min + 1
	}
	for blocks := total / b.Max; blocks <= hi; blocks++ {
		if blocks == 0 {
			continue
		}
		base, plus := total/blocks, total%blocks
		sizes := make([]int, 0, blocks)
		for i := 0; i < blocks; i++ {
			if i < plus {
				sizes = append(sizes, base+1)
			} else {
				sizes = append(sizes, base)
			}
		}
		if allWithin(sizes, b) {
			slices.Sort(sizes)
			return sizes
		}
	}

	sizes := make([]int, 0, total/b.Max+1)
	for i := 0; i < total/b.Max; i++ {
		sizes = append(sizes, b.Max)
	}
	if r := total % b.Max; r > 0 {
		sizes = append(sizes, r)
	}
	slices.Sort(sizes)
	return sizes
}

// GreedySplit walks the remaining count and cuts one block at a time.
// Beyond largeThreshold only 10 and 11 are used, 11 when the remainder divides by
// 11 or equals it; a final remainder under 10 becomes its own block. Otherwise it
// prefers b.Max or b.Min blocks whenever they divide the remainder evenly.
func GreedySplit(total int, b Bounds, largeThreshold int) []int {
	var sizes []int
	for rest := total; rest > 0; {
		var size int
		switch {
		case largeThreshold > 0 && total > largeThreshold:
			size = LargeBounds.Min
			if rest%LargeBounds.Max == 0 || rest == LargeBounds.Max {
				size = LargeBounds.Max
			}
			if rest < LargeBounds.Min {
				size = rest
			}
		case rest <= b.Max:
			size = rest
		case rest%b.Max == 0 || (b.Max > 1 && rest%(b.Max-1) == 0):
			size = b.Max
		case rest%b.Min == 0 || rest%(b.Min+1) == 0:
			size = b.Min
		default:
			size = min(b.Max, rest)
		}
		sizes = append(sizes, size)
		rest -= size
	}
	return sizes
}

// Sizes returns the user split when it validates against the bounds in force,
// otherwise the sizes computed by the configured strategy.
func Sizes(total int, cfg models.PartitionConfig) []int {
	b := Bounds{Min: cfg.MinSize, Max: cfg.MaxSize}.For(total, cfg.LargeThreshold)
	if len(cfg.UserSplit) > 0 && CheckUserSplit(cfg.UserSplit, total, b) {
		return slices.Clone(cfg.UserSplit)
	}
	if models.ResolvePartitionStrategy(cfg.Strategy) == models.PartitionGreedy {
		return GreedySplit(total, Bounds{Min: cfg.MinSize, Max: cfg.MaxSize}, cfg.LargeThreshold)
	}
	return EvenSplit(total, b)
}

// Split cuts items into consecutive slices of the given sizes, in order.
// Sizes running past the end are truncated.
func Split[T any](items []T, sizes []int) [][]T {
	blocks := make([][]T, 0, len(sizes))
	idx := 0
	for _, sz := range sizes {
		if idx >= len(items) {
			break
		}
		end := min(idx+sz, len(items))
		blocks = append(blocks, items[idx:end:end])
		idx = end
	}
	return blocks
}

func allWithin(sizes []int, b Bounds) bool {
	for _, s := range sizes {
		if !b.Contains(s) {
			return false
		}
	}
	return true
}
