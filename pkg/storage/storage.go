package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/render"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// Artifact is one written output file.
type Artifact struct {
	Path       string
	Format     string
	BlockIndex int
	SizeBytes  int64
	// Replaced is set when a file from an earlier run was overwritten.
	Replaced bool
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns metadata about a file using os.Stat.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// ArtifactPath returns <dir>/<prefix>_<index>.<ext>.
func ArtifactPath(dir, prefix string, index int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.%s", prefix, index, ext))
}

// SaveArtifact renders block with r and writes it to <dir>/<prefix>_<block.Index>.<ext>.
// The document is rendered fully in memory so a failed render leaves no partial file.
// The size is taken from the written file.
func (s *Storage) SaveArtifact(dir, prefix string, r render.Renderer, block models.ThemeBlock) (Artifact, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, block); err != nil {
		return Artifact{}, fmt.Errorf("rendering block %d: %w", block.Index, err)
	}

	path := ArtifactPath(dir, prefix, block.Index, r.Ext())
	replaced := s.HasFile(path)
	if err := s.SaveFile(path, buf.Bytes()); err != nil {
		return Artifact{}, err
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Path:       path,
		Format:     r.Ext(),
		BlockIndex: block.Index,
		SizeBytes:  stats.SizeBytes,
		Replaced:   replaced,
	}, nil
}
