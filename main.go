package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/internal/build"
	"github.com/yludeuk/svoyak/internal/db"
	"github.com/yludeuk/svoyak/internal/inspect"
	"github.com/yludeuk/svoyak/internal/preview"
	"github.com/yludeuk/svoyak/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log every skipped line and dropped candidate"},
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Transcript file (.txt, .html)", Required: true},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML run configuration"},
		&cli.StringFlag{Name: "language", Usage: "Transcript language: auto, ru, en"},
		&cli.StringFlag{Name: "strategy", Usage: "Theme detection: blocks, markers"},
		&cli.StringFlag{Name: "partition", Usage: "Block sizing: even, greedy"},
		&cli.IntFlag{Name: "min", Usage: "Minimum themes per block"},
		&cli.IntFlag{Name: "max", Usage: "Maximum themes per block"},
		&cli.StringFlag{Name: "split", Usage: "Explicit block sizes, e.g. 10,10,9,9"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "svoyak",
		Usage: "Split quiz transcripts into themed rounds",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Segment a transcript and write one document per round",
				Flags: append(append(engineFlags(), logFlags()...),
					&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Usage: "Output directory"},
					&cli.StringFlag{Name: "prefix", Usage: "Output file prefix (random when empty)"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output formats: docx, txt, md"},
					&cli.StringFlag{Name: "sqlite", Usage: "Also export rounds to this SQLite file"},
					&cli.BoolFlag{Name: "dry-run", Usage: "Print the plan without writing files"},
				),
				Action: build.BuildAction,
			},
			{
				Name:   "themes",
				Usage:  "List detected themes as YAML",
				Flags:  append(engineFlags(), logFlags()...),
				Action: inspect.ThemesAction,
			},
			{
				Name:  "split",
				Usage: "Show block sizes for a theme count",
				Flags: append(logFlags(),
					&cli.IntFlag{Name: "total", Aliases: []string{"n"}, Usage: "Number of themes", Required: true},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML run configuration"},
					&cli.StringFlag{Name: "partition", Usage: "Block sizing: even, greedy"},
					&cli.IntFlag{Name: "min", Usage: "Minimum themes per block"},
					&cli.IntFlag{Name: "max", Usage: "Maximum themes per block"},
					&cli.StringFlag{Name: "split", Usage: "Explicit block sizes, e.g. 10,10,9,9"},
				),
				Action: inspect.SplitAction,
			},
			{
				Name:  "preview",
				Usage: "Render assembled rounds in the terminal",
				Flags: append(append(engineFlags(), logFlags()...),
					&cli.IntFlag{Name: "block", Aliases: []string{"b"}, Usage: "Only this round (1-based)"},
					&cli.IntFlag{Name: "width", Value: 80, Usage: "Wrap width"},
				),
				Action: preview.PreviewAction,
			},
			{
				Name:  "db",
				Usage: "Inspect a SQLite export",
				Subcommands: []*cli.Command{
					{
						Name:      "rounds",
						Usage:     "List rounds",
						ArgsUsage: "FILE",
						Action:    db.RoundsAction,
					},
					{
						Name:      "round",
						Usage:     "Show the questions of one round",
						ArgsUsage: "FILE N",
						Action:    db.RoundAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
