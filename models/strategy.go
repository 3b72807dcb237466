package models

// SegmentStrategy selects how themes are discovered in the line corpus.
type SegmentStrategy string

const (
	SegmentBlocks  SegmentStrategy = "blocks"  // question-block detector (default)
	SegmentMarkers SegmentStrategy = "markers" // explicit "Тема N" header lines
)

// PartitionStrategy selects how block sizes are computed when no user split applies.
type PartitionStrategy string

const (
	PartitionEven   PartitionStrategy = "even"
	PartitionGreedy PartitionStrategy = "greedy"
)

// Language is the transcript language used to pick marker vocabularies.
type Language string

const (
	LanguageAuto    Language = "auto"
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// OutputFormat is a rendered artifact format.
type OutputFormat string

const (
	FormatDocx     OutputFormat = "docx"
	FormatText     OutputFormat = "txt"
	FormatMarkdown OutputFormat = "md"
)

// ResolveSegmentStrategy maps an empty value to the default strategy.
func ResolveSegmentStrategy(s SegmentStrategy) SegmentStrategy {
	if s == "" {
		return SegmentBlocks
	}
	return s
}

// ResolvePartitionStrategy maps an empty value to the default strategy.
func ResolvePartitionStrategy(s PartitionStrategy) PartitionStrategy {
	if s == "" {
		return PartitionEven
	}
	return s
}
