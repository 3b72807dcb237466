package partition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yludeuk/svoyak/models"
)

var defaultBounds = Bounds{Min: 9, Max: 12}

func TestCheckUserSplit(t *testing.T) {
	tests := []struct {
		name  string
		split []int
		total int
		want  bool
	}{
		{name: "valid", split: []int{10, 10, 9, 9}, total: 38, want: true},
		{name: "size under min", split: []int{10, 10, 10, 8}, total: 38, want: false},
		{name: "size over max", split: []int{13, 12, 13}, total: 38, want: false},
		{name: "wrong sum", split: []int{10, 10, 10}, total: 38, want: false},
		{name: "empty split for zero themes", split: nil, total: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckUserSplit(tt.split, tt.total, defaultBounds))
		})
	}
}

func TestEvenSplit(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		bounds Bounds
		want   []int
	}{
		{name: "zero themes", total: 0, bounds: defaultBounds, want: nil},
		{name: "38 themes", total: 38, bounds: defaultBounds, want: []int{9, 9, 10, 10}},
		{name: "exact max", total: 12, bounds: defaultBounds, want: []int{12}},
		{name: "two even blocks", total: 20, bounds: defaultBounds, want: []int{10, 10}},
		{name: "fallback with remainder", total: 13, bounds: defaultBounds, want: []int{1, 12}},
		{name: "fewer than min", total: 5, bounds: defaultBounds, want: []int{5}},
		{name: "large bounds", total: 101, bounds: LargeBounds, want: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvenSplit(tt.total, tt.bounds)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("EvenSplit(%d) mismatch (-want +got):\n%s", tt.total, diff)
			}
		})
	}
}

func TestGreedySplit(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  []int
	}{
		{name: "small total is one block", total: 5, want: []int{5}},
		{name: "38 themes", total: 38, want: []int{12, 12, 12, 2}},
		{name: "beyond threshold uses 10 and 11", total: 105, want: []int{10, 10, 10, 10, 10, 11, 11, 11, 11, 11}},
		{name: "beyond threshold divisible by 11", total: 121, want: []int{11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11}},
		{name: "zero themes", total: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreedySplit(tt.total, defaultBounds, models.DefaultLargeThreshold)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GreedySplit(%d) mismatch (-want +got):\n%s", tt.total, diff)
			}
		})
	}
}

func TestSizes(t *testing.T) {
	cfg := models.DefaultConfig().Partition

	t.Run("valid user split wins", func(t *testing.T) {
		c := cfg
		c.UserSplit = []int{10, 10, 9, 9}
		assert.Equal(t, []int{10, 10, 9, 9}, Sizes(38, c))
	})

	t.Run("invalid user split falls back to even split", func(t *testing.T) {
		c := cfg
		c.UserSplit = []int{10, 10, 10, 8}
		assert.Equal(t, []int{9, 9, 10, 10}, Sizes(38, c))
	})

	t.Run("user split validated against large bounds", func(t *testing.T) {
		c := cfg
		c.UserSplit = []int{12, 12, 12, 12, 12, 12, 12, 12, 12, 9}
		got := Sizes(117, c)
		for _, s := range got {
			assert.True(t, LargeBounds.Contains(s), "size %d outside 10-11", s)
		}
	})

	t.Run("greedy strategy", func(t *testing.T) {
		c := cfg
		c.Strategy = models.PartitionGreedy
		assert.Equal(t, []int{12, 12, 12, 2}, Sizes(38, c))
	})

	t.Run("zero themes", func(t *testing.T) {
		assert.Empty(t, Sizes(0, cfg))
	})
}

func TestPartitionCompleteness(t *testing.T) {
	cfg := models.DefaultConfig().Partition

	for total := 0; total <= 260; total++ {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}

		sizes := Sizes(total, cfg)
		blocks := Split(items, sizes)

		var flat []int
		outside := 0
		bounds := Bounds{Min: cfg.MinSize, Max: cfg.MaxSize}.For(total, cfg.LargeThreshold)
		for _, b := range blocks {
			flat = append(flat, b...)
			if !bounds.Contains(len(b)) {
				outside++
			}
		}

		require.Equal(t, items, append([]int{}, flat...), "total %d: blocks do not reconstruct input", total)
		require.LessOrEqual(t, outside, 1, "total %d: sizes %v", total, sizes)
	}
}

func TestSplit(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	got := Split(items, []int{2, 3})
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d", "e"}}, got)

	// sizes past the end are truncated, extra sizes are ignored
	got = Split(items, []int{4, 4, 4})
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}, {"e"}}, got)

	assert.Empty(t, Split([]string{}, []int{3}))
}
