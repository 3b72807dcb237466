package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/internal/common"
	dbpkg "github.com/yludeuk/svoyak/pkg/db"
)

func openArg(c *cli.Context) (*dbpkg.DB, error) {
	if c.NArg() == 0 {
		return nil, fmt.Errorf("missing database path. Run 'svoyak build --sqlite FILE' first")
	}
	database, err := dbpkg.Open(c.Args().First())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// RoundsAction lists the rounds stored in an exported database.
func RoundsAction(c *cli.Context) error {
	database, err := openArg(c)
	if err != nil {
		return err
	}
	defer database.Close()

	rounds, err := database.ListRounds()
	if err != nil {
		return fmt.Errorf("failed to list rounds: %w", err)
	}

	out := common.Stdout(c)
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds found")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-8s %-10s\n", "Round", "Themes", "Questions")
	fmt.Fprintln(out, strings.Repeat("-", 26))
	for _, r := range rounds {
		fmt.Fprintf(out, "%-6d %-8d %-10d\n", r.BlockIndex, r.ThemeCount, r.QuestionCount)
	}

	fmt.Fprintf(out, "\nTotal: %d rounds\n", len(rounds))
	fmt.Fprintf(out, "\nTip: Use 'svoyak db round %s <n>' to see questions\n", database.Path())
	return nil
}

// RoundAction prints the questions of one round.
func RoundAction(c *cli.Context) error {
	database, err := openArg(c)
	if err != nil {
		return err
	}
	defer database.Close()

	index, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid round number: %q", c.Args().Get(1))
	}

	questions, err := database.ListQuestions(index)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("round %d not found", index)
	}

	out := common.Stdout(c)
	fmt.Fprintf(out, "Round %d\n", index)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	theme := -1
	for _, q := range questions {
		if q.ThemeNumber != theme {
			theme = q.ThemeNumber
			fmt.Fprintf(out, "\n%d. %s\n", q.ThemeNumber, q.ThemeName)
		}
		fmt.Fprintf(out, "  %3d (%d) %s\n", q.NormalizedPrice, q.Price, firstLine(q.Question))
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
