package inspect

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/internal/common"
	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/parser"
	"github.com/yludeuk/svoyak/pkg/partition"
	"github.com/yludeuk/svoyak/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// ThemeRow is one detected theme as printed by the themes command.
type ThemeRow struct {
	Num       int    `yaml:"num"`
	Name      string `yaml:"name"`
	Lines     string `yaml:"lines"`
	Questions int    `yaml:"questions"`
	Number    int    `yaml:"number,omitempty"`
	Dropped   bool   `yaml:"dropped,omitempty"`
}

// ThemesReport is the YAML document printed by the themes command.
type ThemesReport struct {
	Language string     `yaml:"language"`
	Themes   []ThemeRow `yaml:"themes"`
}

// BuildThemesReport lists every detected theme with the number of questions it
// kept. Line ranges are 1-based and inclusive.
func BuildThemesReport(res *pipeline.Result) ThemesReport {
	type span struct{ start, qstart int }
	kept := make(map[span]models.AssembledTheme, len(res.Assembled))
	for _, a := range res.Assembled {
		kept[span{a.Theme.Start, a.Theme.QStart}] = a
	}

	report := ThemesReport{Language: string(res.Language.Language)}
	for _, t := range res.Themes {
		row := ThemeRow{
			Num:   t.Num,
			Name:  t.Name,
			Lines: fmt.Sprintf("%d-%d", max(t.Start, 0)+1, t.End),
		}
		if a, ok := kept[span{t.Start, t.QStart}]; ok {
			row.Questions = len(a.Records)
			row.Number = a.Number
		} else {
			row.Dropped = true
		}
		report.Themes = append(report.Themes, row)
	}
	return report
}

// ThemesAction prints the detected themes of a transcript as YAML.
func ThemesAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadRunConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	lines, err := parser.ReadFile(c.String("input"))
	if err != nil {
		return err
	}

	res, err := pipeline.Run(lines, cfg, logger)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(BuildThemesReport(res))
	if err != nil {
		return fmt.Errorf("failed to marshal themes: %w", err)
	}
	_, err = common.Stdout(c).Write(data)
	return err
}

// SplitAction prints the block sizes chosen for a theme count.
func SplitAction(c *cli.Context) error {
	cfg, err := common.LoadRunConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	total := c.Int("total")
	if total < 0 {
		return fmt.Errorf("%w: total must not be negative, got %d", models.ErrInvalidConfig, total)
	}

	p := cfg.Partition
	bounds := partition.Bounds{Min: p.MinSize, Max: p.MaxSize}.For(total, p.LargeThreshold)
	sizes := partition.Sizes(total, p)

	out := common.Stdout(c)
	if len(p.UserSplit) > 0 && !partition.CheckUserSplit(p.UserSplit, total, bounds) {
		fmt.Fprintf(out, "Split %v rejected: sizes must sum to %d and lie within %d-%d\n", p.UserSplit, total, bounds.Min, bounds.Max)
	}

	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprint(s)
	}
	fmt.Fprintf(out, "Bounds: %d-%d\n", bounds.Min, bounds.Max)
	fmt.Fprintf(out, "Sizes:  %s\n", strings.Join(parts, ","))
	return nil
}
