package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phenrril/vishwakarma/internal/domain"
)

// Campos editables del filtro de la tienda.
const (
	FieldQuery    = "q"
	FieldCategory = "category"
	FieldMaxPrice = "max_price"
	FieldMaterial = "material"
	FieldColor    = "color"
)

// FilterState separa los cambios en curso (Staged) de los criterios aplicados (Active).
// Las transiciones devuelven un estado nuevo y no comparten slices con el anterior.
type FilterState struct {
	Staged domain.ProductFilter `json:"staged"`
	Active domain.ProductFilter `json:"active"`
}

func NewFilterState(defaults domain.ProductFilter) FilterState {
	return FilterState{Staged: defaults.Clone(), Active: defaults.Clone()}
}

// Edit modifica sólo Staged. "material" alterna la pertenencia del valor.
// Sólo un campo desconocido devuelve error.
func (s FilterState) Edit(field, value string) (FilterState, error) {
	next := FilterState{Staged: s.Staged.Clone(), Active: s.Active.Clone()}
	switch field {
	case FieldQuery:
		next.Staged.Query = value
	case FieldCategory:
		next.Staged.Category = strings.TrimSpace(value)
		if next.Staged.Category == "" {
			next.Staged.Category = domain.CategoryAll
		}
	case FieldMaxPrice:
		// un valor mal formado se ignora; uno negativo queda en 0
		if v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			next.Staged.PriceCeiling = max(v, 0)
		}
	case FieldMaterial:
		next.Staged.Materials = toggle(next.Staged.Materials, strings.TrimSpace(value))
	case FieldColor:
		next.Staged.Color = strings.TrimSpace(value)
	default:
		return s, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
	}
	return next, nil
}

// Apply copia Staged sobre Active.
func (s FilterState) Apply() FilterState {
	return FilterState{Staged: s.Staged.Clone(), Active: s.Staged.Clone()}
}

// Reset vuelve ambos a los valores por defecto.
func (s FilterState) Reset(defaults domain.ProductFilter) FilterState {
	return NewFilterState(defaults)
}

func toggle(list []string, v string) []string {
	if v == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	found := false
	for _, s := range list {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
