package usecase

import (
	"strings"

	"github.com/phenrril/vishwakarma/internal/domain"
)

// MaxPrice devuelve el precio más alto del catálogo (0 si está vacío).
func MaxPrice(items []domain.Product) int64 {
	var max int64
	for _, p := range items {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// DefaultProductFilter no restringe nada: el tope de precio es el máximo del catálogo.
func DefaultProductFilter(items []domain.Product) domain.ProductFilter {
	return domain.ProductFilter{Category: domain.CategoryAll, PriceCeiling: MaxPrice(items)}
}

// FilterProducts aplica todos los criterios en conjunción y conserva el orden de entrada.
func FilterProducts(items []domain.Product, f domain.ProductFilter) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	cat := strings.TrimSpace(f.Category)
	if strings.EqualFold(cat, domain.CategoryAll) {
		cat = ""
	}
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if cat != "" && !strings.EqualFold(p.Category, cat) {
			continue
		}
		if p.Price > f.PriceCeiling {
			continue
		}
		if len(f.Materials) > 0 && !contains(f.Materials, p.Material) {
			continue
		}
		if f.Color != "" && p.Color.Name != f.Color {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DefaultCarpenterFilter cubre todo el plantel: [0, max(experiencia, 30)].
func DefaultCarpenterFilter(items []domain.Carpenter) domain.CarpenterFilter {
	max := domain.ExperienceCeilingFloor
	for _, c := range items {
		if c.Experience > max {
			max = c.Experience
		}
	}
	return domain.CarpenterFilter{MinExperience: 0, MaxExperience: max}
}

// FilterCarpenters exige todas las especialidades elegidas (AND), a diferencia
// del filtro de materiales de productos que es por pertenencia.
func FilterCarpenters(items []domain.Carpenter, f domain.CarpenterFilter) []domain.Carpenter {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Carpenter, 0, len(items))
	for _, c := range items {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		if len(f.Specialties) > 0 && !c.HasAll(f.Specialties) {
			continue
		}
		if c.Experience < f.MinExperience || c.Experience > f.MaxExperience {
			continue
		}
		out = append(out, c)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
