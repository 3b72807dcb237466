package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/models"
)

// NewLogger builds the JSON logger used by every command.
// --quiet keeps errors only, --verbose adds debug decisions.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	var w io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// Stdout returns the writer commands print results to.
func Stdout(c *cli.Context) io.Writer {
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

// LoadRunConfig reads --config when given, applies flag overrides and validates.
func LoadRunConfig(c *cli.Context) (models.RunConfig, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = models.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
	}
	if err := ApplyFlags(c, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyFlags copies every explicitly set flag onto cfg.
func ApplyFlags(c *cli.Context, cfg *models.RunConfig) error {
	if c.IsSet("language") {
		cfg.Language = models.Language(c.String("language"))
	}
	if c.IsSet("strategy") {
		cfg.Segment.Strategy = models.SegmentStrategy(c.String("strategy"))
	}
	if c.IsSet("partition") {
		cfg.Partition.Strategy = models.PartitionStrategy(c.String("partition"))
	}
	if c.IsSet("min") {
		cfg.Partition.MinSize = c.Int("min")
	}
	if c.IsSet("max") {
		cfg.Partition.MaxSize = c.Int("max")
	}
	if c.IsSet("split") {
		split, err := ParseSplit(c.String("split"))
		if err != nil {
			return err
		}
		cfg.Partition.UserSplit = split
	}
	if c.IsSet("out-dir") {
		cfg.Output.Dir = c.String("out-dir")
	}
	if c.IsSet("prefix") {
		cfg.Output.Prefix = c.String("prefix")
	}
	if c.IsSet("format") {
		formats, err := ParseFormats(c.String("format"))
		if err != nil {
			return err
		}
		cfg.Output.Formats = formats
	}
	if c.IsSet("sqlite") {
		cfg.Output.SQLite = c.String("sqlite")
	}
	return nil
}

// ParseSplit parses a comma-separated list of block sizes, e.g. "10,10,9,9".
func ParseSplit(s string) ([]int, error) {
	var sizes []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: split entry %q is not a number", models.ErrInvalidConfig, part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// ParseFormats parses a comma-separated list of output formats.
func ParseFormats(s string) ([]models.OutputFormat, error) {
	var formats []models.OutputFormat
	for _, part := range splitList(s) {
		f := models.OutputFormat(strings.ToLower(part))
		switch f {
		case models.FormatDocx, models.FormatText, models.FormatMarkdown:
			formats = append(formats, f)
		default:
			return nil, fmt.Errorf("%w: unknown output format %q", models.ErrInvalidConfig, part)
		}
	}
	return formats, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultPrefix returns a short random prefix for output files.
func DefaultPrefix() string {
	return "svoyak_" + uuid.New().String()[:8]
}
