package repository

import (
	"context"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// VocabularyRepository loads the externally-curated reference vocabulary.
// The engine never writes vocabulary; curation happens in collaborating
// systems and this repository only reads the result.
type VocabularyRepository interface {
	LoadReferenceSets(ctx context.Context) (*entity.ReferenceSets, error)
}
