package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is one catalog product name or alias, curated outside the engine
type Product struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "vocab_products"
}

// City is a recognized delivery city name
type City struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (City) TableName() string {
	return "vocab_cities"
}

// FAQKeyword is one keyword belonging to an FAQ topic family
type FAQKeyword struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Topic     string    `json:"topic" gorm:"type:varchar(50);not null;index"`
	Keyword   string    `json:"keyword" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (FAQKeyword) TableName() string {
	return "vocab_faq_keywords"
}

// PaymentMethod is a recognized payment-method keyword
type PaymentMethod struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Keyword   string    `json:"keyword" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (PaymentMethod) TableName() string {
	return "vocab_payment_methods"
}

// NewProduct creates a product vocabulary row
func NewProduct(name string) *Product {
	return &Product{ID: uuid.New(), Name: name}
}

// NewCity creates a city vocabulary row
func NewCity(name string) *City {
	return &City{ID: uuid.New(), Name: name}
}

// NewFAQKeyword creates an FAQ topic keyword row
func NewFAQKeyword(topic, keyword string) *FAQKeyword {
	return &FAQKeyword{ID: uuid.New(), Topic: topic, Keyword: keyword}
}

// NewPaymentMethod creates a payment keyword row
func NewPaymentMethod(keyword string) *PaymentMethod {
	return &PaymentMethod{ID: uuid.New(), Keyword: keyword}
}
