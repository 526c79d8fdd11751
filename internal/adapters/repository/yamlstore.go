package repository

import (
	"bytes"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/internal/domain/model"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

// versionLength is the number of hex digits kept from the content hash.
const versionLength = 12

type document struct {
	Projects []catalog.Record `yaml:"projects"`
	Games    []model.Game     `yaml:"games"`
}

// YAMLStore is an immutable Store decoded from a YAML document.
type YAMLStore struct {
	projects []catalog.Record
	bySlug   map[string]int
	games    []model.Game
	version  string
	source   string
}

// Load reads the catalog from the embedded seed or the configured file and
// checks slug uniqueness.
func Load(_ context.Context, opts ...Option) (*YAMLStore, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, source := seedCatalog, "embedded"
	if cfg.path != "" {
		raw, err := os.ReadFile(cfg.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
		}
		data, source = raw, cfg.path
	}
	return Parse(data, source)
}

// Parse decodes a catalog document. Unknown fields are rejected; an empty
// document is an empty catalog.
func Parse(data []byte, source string) (*YAMLStore, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, source, err)
	}

	bySlug := make(map[string]int, len(doc.Projects))
	for i, p := range doc.Projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: %s: record %d (%q)", ErrEmptySlug, source, i, p.Title)
		}
		if prev, ok := bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("%w: %s: %q at records %d and %d", ErrDuplicateSlug, source, p.Slug, prev, i)
		}
		bySlug[p.Slug] = i
	}

	sum := sha256.Sum256(data)
	return &YAMLStore{
		projects: doc.Projects,
		bySlug:   bySlug,
		games:    doc.Games,
		version:  hex.EncodeToString(sum[:])[:versionLength],
		source:   source,
	}, nil
}

// Projects returns copies of the records so callers cannot alter the catalog.
func (s *YAMLStore) Projects(_ context.Context) []catalog.Record {
	out := make([]catalog.Record, len(s.projects))
	for i, p := range s.projects {
		p.Stack = slices.Clone(p.Stack)
		out[i] = p
	}
	return out
}

// Project looks a record up by slug.
func (s *YAMLStore) Project(_ context.Context, slug string) (catalog.Record, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return catalog.Record{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	p := s.projects[i]
	p.Stack = slices.Clone(p.Stack)
	return p, nil
}

// Games returns a copy of the games list.
func (s *YAMLStore) Games(_ context.Context) []model.Game {
	return slices.Clone(s.games)
}

// Version is a short content hash.
func (s *YAMLStore) Version() string { return s.version }

// Source names where the catalog was read from.
func (s *YAMLStore) Source() string { return s.source }

// Count returns the number of projects.
func (s *YAMLStore) Count(_ context.Context) int { return len(s.projects) }
