package build

import (
	"log/slog"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/render"
	"github.com/yludeuk/svoyak/pkg/storage"
)

// writeArtifacts renders every block in every format, block by block.
// It stops at the first failure and returns what was written so far.
func writeArtifacts(logger *slog.Logger, s *storage.Storage, dir, prefix string, blocks []models.ThemeBlock, renderers []render.Renderer) ([]storage.Artifact, error) {
	artifacts := make([]storage.Artifact, 0, len(blocks)*len(renderers))
	for _, b := range blocks {
		for _, r := range renderers {
			art, err := s.SaveArtifact(dir, prefix, r, b)
			if err != nil {
				logger.Error("failed to write round", "block", b.Index, "format", r.Ext(), "error", err)
				return artifacts, err
			}
			if art.Replaced {
				logger.Warn("overwrote existing round", "path", art.Path)
			}
			logger.Debug("round written", "path", art.Path, "size_bytes", art.SizeBytes)
			artifacts = append(artifacts, art)
		}
	}
	return artifacts, nil
}
