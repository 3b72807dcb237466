package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/internal/common"
	"github.com/yludeuk/svoyak/pkg/parser"
	"github.com/yludeuk/svoyak/pkg/pipeline"
	"github.com/yludeuk/svoyak/pkg/render"
)

// PreviewAction renders assembled rounds to the terminal. --block limits the
// output to one block; 0 shows all of them.
func PreviewAction(c *cli.Context) error {
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

	out := common.Stdout(c)
	if len(res.Blocks) == 0 {
		fmt.Fprintln(out, "No themes found")
		return nil
	}

	heading := lipgloss.NewStyle().Bold(true)

	want := c.Int("block")
	if want < 0 || want > len(res.Blocks) {
		return fmt.Errorf("block %d out of range 1-%d", want, len(res.Blocks))
	}

	for _, b := range res.Blocks {
		if want != 0 && b.Index != want {
			continue
		}
		text, err := render.Preview(b, c.Int("width"))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, heading.Render(fmt.Sprintf("=== Round %d (%d themes, %d questions) ===", b.Index, len(b.Themes), b.QuestionCount())))
		fmt.Fprint(out, text)
	}
	return nil
}
