package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Archetype es el tipo base de mueble (Sofa, Bed, ...).
type Archetype struct {
	Name        string `yaml:"name" json:"name"`
	Category    string `yaml:"category" json:"category"`
	BasePrice   int64  `yaml:"base_price" json:"base_price"`
	Description string `yaml:"description" json:"description"`
}

// MaterialModifier es una madera/material con su factor de precio y prefijo de nombre.
type MaterialModifier struct {
	Name       string          `yaml:"name" json:"name"`
	PriceMod   decimal.Decimal `yaml:"price_mod" json:"price_mod"`
	NamePrefix string          `yaml:"prefix" json:"prefix"`
}

// FinishModifier es un acabado. Sin price_mod el factor es 1.
type FinishModifier struct {
	Name       string           `yaml:"name" json:"name"`
	NamePrefix string           `yaml:"prefix" json:"prefix"`
	PriceMod   *decimal.Decimal `yaml:"price_mod,omitempty" json:"price_mod,omitempty"`
}

// Factor devuelve el multiplicador efectivo del acabado.
func (f FinishModifier) Factor() decimal.Decimal {
	if f.PriceMod == nil {
		return decimal.NewFromInt(1)
	}
	return *f.PriceMod
}

type Color struct {
	Name string `yaml:"name" json:"name" gorm:"size:60"`
	Hex  string `yaml:"hex" json:"hex" gorm:"size:9"`
}

type Category struct {
	Slug string `yaml:"slug" json:"slug"`
	Name string `yaml:"name" json:"name"`
}

// CatalogAxes agrupa los ejes combinatorios de la generación del catálogo.
type CatalogAxes struct {
	Archetypes     []Archetype         `yaml:"archetypes"`
	Materials      []MaterialModifier  `yaml:"woods"`
	Finishes       []FinishModifier    `yaml:"finishes"`
	MaterialLabels []string            `yaml:"materials"`
	Colors         []Color             `yaml:"colors"`
	CategoryImages map[string][]string `yaml:"category_images"`
	Limit          int                 `yaml:"limit"`
}

const (
	PlaceholderDimensions = "180cm x 200cm x 90cm"
	CategoryAll           = "all"
)

type Product struct {
	ID          string    `gorm:"primaryKey;size:20" json:"id"`
	Seq         int       `gorm:"index" json:"-"`
	Name        string    `gorm:"size:180" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:200" json:"slug"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Price       int64     `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:100" json:"image"`
	Dimensions  string    `gorm:"size:60" json:"dimensions"`
	Wood        string    `gorm:"size:60" json:"wood"`
	Finish      string    `gorm:"size:60" json:"finish"`
	Material    string    `gorm:"size:60" json:"material,omitempty"`
	Color       Color     `gorm:"embedded;embeddedPrefix:color_" json:"color"`
	SyncedAt    time.Time `json:"-"`
}
