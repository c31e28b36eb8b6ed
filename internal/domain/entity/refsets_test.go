package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceSets(t *testing.T) {
	refs := NewReferenceSets(
		[]string{"Olive Oil", " wine ", ""},
		[]string{"Rome", "Milan"},
		map[string][]string{"Shipping": {"Shipping", "courier", " "}},
		[]string{"bank transfer"},
	)

	assert.True(t, refs.ProductNames["olive oil"])
	assert.True(t, refs.ProductNames["wine"])
	assert.Len(t, refs.ProductNames, 2)
	assert.True(t, refs.CityNames["rome"])
	assert.True(t, refs.CityNames["milan"])
	assert.Equal(t, []string{"shipping", "courier"}, refs.FAQTopicKeywords["shipping"])
	assert.True(t, refs.PaymentKeywords["bank transfer"])
}

func TestReferenceSets_Validate(t *testing.T) {
	t.Run("valid sets", func(t *testing.T) {
		refs := NewReferenceSets(
			[]string{"oil"},
			[]string{"rome"},
			map[string][]string{"shipping": {"courier"}},
			[]string{"bank transfer"},
		)
		assert.NoError(t, refs.Validate())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var refs *ReferenceSets
		assert.ErrorIs(t, refs.Validate(), ErrNoReferenceSets)
	})

	t.Run("nil map", func(t *testing.T) {
		refs := &ReferenceSets{
			ProductNames:    map[string]bool{"oil": true},
			CityNames:       map[string]bool{},
			PaymentKeywords: map[string]bool{},
		}
		assert.ErrorIs(t, refs.Validate(), ErrNilReferenceSet)
	})

	t.Run("all sets empty", func(t *testing.T) {
		refs := NewReferenceSets(nil, nil, nil, nil)
		assert.ErrorIs(t, refs.Validate(), ErrEmptyReferenceVocab)
	})

	t.Run("topic without keywords", func(t *testing.T) {
		refs := NewReferenceSets([]string{"oil"}, nil, map[string][]string{"shipping": {}}, nil)
		assert.ErrorIs(t, refs.Validate(), ErrEmptyFAQTopicKeyword)
	})
}

func TestReferenceSets_Counts(t *testing.T) {
	refs := NewReferenceSets(
		[]string{"oil", "wine"},
		[]string{"rome"},
		map[string][]string{"shipping": {"courier", "parcel"}, "payment": {"transfer"}},
		[]string{"cash"},
	)

	counts := refs.Counts()
	assert.Equal(t, 2, counts["products"])
	assert.Equal(t, 1, counts["cities"])
	assert.Equal(t, 2, counts["faq_topics"])
	assert.Equal(t, 3, counts["faq_keywords"])
	assert.Equal(t, 1, counts["payment_keywords"])
}
