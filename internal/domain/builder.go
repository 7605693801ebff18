package domain

import "github.com/shopspring/decimal"

type BuildType struct {
	Name      string `yaml:"name" json:"name"`
	BasePrice int64  `yaml:"base_price" json:"base_price"`
	Image     string `yaml:"image" json:"image"`
}

type BuildOption struct {
	Name            string          `yaml:"name" json:"name"`
	PriceMultiplier decimal.Decimal `yaml:"price_multiplier" json:"price_multiplier"`
}

type BuilderOptions struct {
	Types    []BuildType   `yaml:"types" json:"types"`
	Woods    []BuildOption `yaml:"woods" json:"woods"`
	Finishes []BuildOption `yaml:"finishes" json:"finishes"`
	// madera que obliga a una consulta previa
	ConsultationWood string `yaml:"consultation_wood" json:"consultation_wood"`
}

type BuildConfig struct {
	Type   string `json:"type"`
	Wood   string `json:"wood"`
	Finish string `json:"finish"`
}

type BuildEstimate struct {
	Config               BuildConfig     `json:"config"`
	Price                decimal.Decimal `json:"price"`
	RequiresConsultation bool            `json:"requires_consultation"`
	Notice               string          `json:"notice,omitempty"`
}

const ConsultationNotice = "Final price subject to consultation."
