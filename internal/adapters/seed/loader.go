package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phenrril/vishwakarma/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Seed es la configuración estática que se lee una vez al arrancar.
type Seed struct {
	Categories []domain.Category     `yaml:"categories"`
	Axes       domain.CatalogAxes    `yaml:",inline"`
	Images     []domain.Image        `yaml:"images"`
	Carpenters []domain.Carpenter    `yaml:"carpenters"`
	Builder    domain.BuilderOptions `yaml:"builder"`
}

// Load lee el archivo indicado o, si path está vacío, el catálogo embebido.
func Load(path string) (*Seed, error) {
	data := defaultCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("seed: yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate junta todos los problemas de configuración en un solo error.
func (s *Seed) Validate() error {
	var errs []error
	if len(s.Axes.Archetypes) == 0 {
		errs = append(errs, errors.New("sin arquetipos"))
	}
	if len(s.Axes.Materials) == 0 {
		errs = append(errs, errors.New("sin maderas"))
	}
	if len(s.Axes.Finishes) == 0 {
		errs = append(errs, errors.New("sin acabados"))
	}
	if s.Axes.Limit < 0 {
		errs = append(errs, errors.New("limit negativo"))
	}
	for _, a := range s.Axes.Archetypes {
		if a.Name == "" || a.BasePrice <= 0 {
			errs = append(errs, fmt.Errorf("arquetipo %q inválido", a.Name))
		}
	}
	for _, m := range s.Axes.Materials {
		if !m.PriceMod.IsPositive() {
			errs = append(errs, fmt.Errorf("madera %q: factor debe ser > 0", m.Name))
		}
	}
	for _, f := range s.Axes.Finishes {
		if f.PriceMod != nil && !f.PriceMod.IsPositive() {
			errs = append(errs, fmt.Errorf("acabado %q: factor debe ser > 0", f.Name))
		}
	}
	ids := map[string]struct{}{}
	for _, c := range s.Carpenters {
		if _, dup := ids[c.ID]; dup || c.ID == "" {
			errs = append(errs, fmt.Errorf("carpintero id %q repetido o vacío", c.ID))
		}
		ids[c.ID] = struct{}{}
		if c.Experience < 0 || c.Rating < 0 || c.Rating > 5 || c.HourlyRate <= 0 || len(c.Specialties) == 0 {
			errs = append(errs, fmt.Errorf("carpintero %q inválido", c.Name))
		}
	}
	for _, t := range s.Builder.Types {
		if t.BasePrice <= 0 {
			errs = append(errs, fmt.Errorf("tipo %q: precio base inválido", t.Name))
		}
	}
	for _, o := range append(append([]domain.BuildOption(nil), s.Builder.Woods...), s.Builder.Finishes...) {
		if !o.PriceMultiplier.IsPositive() {
			errs = append(errs, fmt.Errorf("opción %q: multiplicador debe ser > 0", o.Name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
