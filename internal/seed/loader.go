package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a starter catalog from a named source.
type Loader interface {
	// Load reads and decodes a gzipped JSON catalog. The path is
	// interpreted by the implementation (file path, object key).
	Load(ctx context.Context, path string) (Catalog, error)
}

// fileLoader implements Loader for gzipped catalog files on disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped JSON catalog file.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading starter catalog")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	catalog, err := decodeCatalog(ctx, file, l.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(catalog)).
		Msg("starter catalog loaded")
	return catalog, nil
}

// decodeCatalog decompresses and decodes a catalog stream, dropping entries
// that would violate the item rules (empty fields, unknown or reserved
// category, duplicate id) rather than failing the whole load.
func decodeCatalog(ctx context.Context, r io.Reader, logger zerolog.Logger) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	var raw []model.Item
	if err := json.NewDecoder(gzipReader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}

	catalog := make(Catalog, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, item := range raw {
		item.Name = strings.TrimSpace(item.Name)
		item.Business = strings.TrimSpace(item.Business)
		item.Description = strings.TrimSpace(item.Description)
		switch {
		case item.ID == "" || seen[item.ID]:
			logger.Warn().Int("index", i).Msg("skipping catalog entry with missing or duplicate id")
		case item.Name == "" || item.Business == "" || item.Description == "":
			logger.Warn().Int("index", i).Str("item_id", item.ID).Msg("skipping catalog entry with empty fields")
		case !item.Category.CreatorAssignable():
			logger.Warn().
				Int("index", i).
				Str("item_id", item.ID).
				Str("category", string(item.Category)).
				Msg("skipping catalog entry with invalid category")
		default:
			seen[item.ID] = true
			catalog = append(catalog, item)
		}
	}
	return catalog, nil
}
