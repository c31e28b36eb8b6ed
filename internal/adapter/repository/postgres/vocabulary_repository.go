package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
	"github.com/gcaponi/S4all-BOT/internal/domain/repository"
)

type vocabularyRepository struct {
	db *gorm.DB
}

// NewVocabularyRepository creates a vocabulary repository backed by the
// shared curation database
func NewVocabularyRepository(db *gorm.DB) repository.VocabularyRepository {
	return &vocabularyRepository{db: db}
}

func (r *vocabularyRepository) LoadReferenceSets(ctx context.Context) (*entity.ReferenceSets, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	var cities []entity.City
	if err := r.db.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}

	var faqKeywords []entity.FAQKeyword
	if err := r.db.WithContext(ctx).Order("topic, keyword").Find(&faqKeywords).Error; err != nil {
		return nil, fmt.Errorf("load faq keywords: %w", err)
	}

	var payments []entity.PaymentMethod
	if err := r.db.WithContext(ctx).Order("keyword").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("load payment methods: %w", err)
	}

	productNames := make([]string, len(products))
	for i, p := range products {
		productNames[i] = p.Name
	}
	cityNames := make([]string, len(cities))
	for i, c := range cities {
		cityNames[i] = c.Name
	}
	faqTopics := make(map[string][]string)
	for _, kw := range faqKeywords {
		faqTopics[kw.Topic] = append(faqTopics[kw.Topic], kw.Keyword)
	}
	paymentKeywords := make([]string, len(payments))
	for i, p := range payments {
		paymentKeywords[i] = p.Keyword
	}

	return entity.NewReferenceSets(productNames, cityNames, faqTopics, paymentKeywords), nil
}
