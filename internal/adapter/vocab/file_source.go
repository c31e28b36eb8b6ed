// Package vocab provides a file-backed vocabulary source for deployments
// that run without the curation database.
package vocab

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
	"github.com/gcaponi/S4all-BOT/internal/domain/repository"
)

// vocabularyFile mirrors the YAML layout of a curated vocabulary export
type vocabularyFile struct {
	Products  []string            `koanf:"products"`
	Cities    []string            `koanf:"cities"`
	FAQTopics map[string][]string `koanf:"faq_topics"`
	Payments  []string            `koanf:"payments"`
}

type fileSource struct {
	path string
}

// NewFileSource creates a VocabularyRepository reading a YAML file.
// The file is re-read on every load, so a reload picks up edits.
func NewFileSource(path string) repository.VocabularyRepository {
	return &fileSource{path: path}
}

func (s *fileSource) LoadReferenceSets(_ context.Context) (*entity.ReferenceSets, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load vocabulary file %s: %w", s.path, err)
	}

	var vf vocabularyFile
	if err := k.Unmarshal("", &vf); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", s.path, err)
	}

	return entity.NewReferenceSets(vf.Products, vf.Cities, vf.FAQTopics, vf.Payments), nil
}
