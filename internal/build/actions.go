package build

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"github.com/yludeuk/svoyak/internal/common"
	"github.com/yludeuk/svoyak/pkg/db"
	"github.com/yludeuk/svoyak/pkg/manifest"
	"github.com/yludeuk/svoyak/pkg/parser"
	"github.com/yludeuk/svoyak/pkg/pipeline"
	"github.com/yludeuk/svoyak/pkg/render"
	"github.com/yludeuk/svoyak/pkg/storage"
)

// BuildAction reads a transcript, runs the engine and writes one document per
// block plus a manifest and, optionally, a SQLite export.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	cfg, err := common.LoadRunConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	input := c.String("input")
	lines, err := parser.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Info("transcript loaded", "path", input, "lines", len(lines))

	res, err := pipeline.Run(lines, cfg, logger)
	if err != nil {
		return err
	}

	out := common.Stdout(c)
	if c.Bool("dry-run") {
		printPlan(out, res)
		return nil
	}
	if len(res.Blocks) == 0 {
		logger.Warn("no themes found, nothing written", "path", input)
		fmt.Fprintln(out, "No themes found")
		return nil
	}

	prefix := cfg.Output.Prefix
	if prefix == "" {
		prefix = common.DefaultPrefix()
	}

	renderers := make([]render.Renderer, 0, len(cfg.Output.Formats))
	for _, f := range cfg.Output.Formats {
		r, err := render.For(f)
		if err != nil {
			return err
		}
		renderers = append(renderers, r)
	}

	s := &storage.Storage{}
	artifacts, err := writeArtifacts(logger, s, cfg.Output.Dir, prefix, res.Blocks, renderers)
	if err != nil {
		return fmt.Errorf("failed to write rounds: %w", err)
	}

	if cfg.Output.SQLite != "" {
		records := make([]db.ArtifactRecord, len(artifacts))
		for i, a := range artifacts {
			records[i] = db.ArtifactRecord{BlockIndex: a.BlockIndex, Format: a.Format, FilePath: a.Path, SizeBytes: a.SizeBytes}
		}
		err := db.Export(cfg.Output.SQLite, db.Run{
			Prefix:    prefix,
			Language:  res.Language.Language,
			Source:    input,
			Blocks:    res.Blocks,
			Artifacts: records,
		})
		if err != nil {
			return fmt.Errorf("failed to export SQLite: %w", err)
		}
		logger.Info("SQLite export written", "path", cfg.Output.SQLite)
	}

	manifestPath, err := manifest.Generate(cfg.Output.Dir, prefix, manifest.Input{
		Source:    input,
		Result:    res,
		Artifacts: artifacts,
		SQLite:    cfg.Output.SQLite,
	}, s)
	if err != nil {
		return err
	}

	printSummary(out, res, artifacts, manifestPath)
	logger.Info("build complete", "blocks", len(res.Blocks), "files", len(artifacts), "duration", time.Since(startTime).String())
	return nil
}

func printPlan(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "Language: %s\n", res.Language.Language)
	fmt.Fprintf(w, "Themes:   %d detected, %d kept\n", len(res.Themes), len(res.Assembled))
	fmt.Fprintf(w, "Blocks:   %s\n", formatSizes(res.Sizes))
	for _, b := range res.Blocks {
		fmt.Fprintf(w, "  #%d  %d themes, %d questions\n", b.Index, len(b.Themes), b.QuestionCount())
	}
}

func printSummary(w io.Writer, res *pipeline.Result, artifacts []storage.Artifact, manifestPath string) {
	printPlan(w, res)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	var total int64
	for _, a := range artifacts {
		fmt.Fprintf(w, "%-40s %10s\n", a.Path, humanize.Bytes(uint64(a.SizeBytes)))
		total += a.SizeBytes
	}
	fmt.Fprintf(w, "Total: %d files, %s\n", len(artifacts), humanize.Bytes(uint64(total)))
	fmt.Fprintf(w, "Manifest: %s\n", manifestPath)
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprint(s)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
