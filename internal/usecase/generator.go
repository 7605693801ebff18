package usecase

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/phenrril/vishwakarma/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CatalogPrice redondea hacia abajo a la centena: floor(base*wood*finish/100)*100.
func CatalogPrice(base int64, material, finish decimal.Decimal) int64 {
	return decimal.NewFromInt(base).
		Mul(material).
		Mul(finish).
		Div(hundred).
		Floor().
		Mul(hundred).
		IntPart()
}

// GenerateCatalog expande arquetipo × madera × acabado en ese orden de anidamiento.
// Los ids salen de un contador local, así dos llamadas con los mismos ejes dan el mismo resultado.
func GenerateCatalog(axes domain.CatalogAxes) []domain.Product {
	if len(axes.Archetypes) == 0 || len(axes.Materials) == 0 || len(axes.Finishes) == 0 {
		return []domain.Product{}
	}
	total := len(axes.Archetypes) * len(axes.Materials) * len(axes.Finishes)
	if axes.Limit > 0 && axes.Limit < total {
		total = axes.Limit
	}
	out := make([]domain.Product, 0, total)
	i := 0
	for _, base := range axes.Archetypes {
		for _, wood := range axes.Materials {
			for _, fin := range axes.Finishes {
				if i == total {
					return out
				}
				out = append(out, buildProduct(axes, i, base, wood, fin))
				i++
			}
		}
	}
	return out
}

func buildProduct(axes domain.CatalogAxes, i int, base domain.Archetype, wood domain.MaterialModifier, fin domain.FinishModifier) domain.Product {
	id := strconv.Itoa(i + 1)
	name := strings.Join(nonEmpty(wood.NamePrefix, fin.NamePrefix, base.Name), " ")
	p := domain.Product{
		ID:          id,
		Seq:         i,
		Name:        name,
		Slug:        slugify(name) + "-" + id,
		Category:    base.Category,
		Price:       CatalogPrice(base.BasePrice, wood.PriceMod, fin.Factor()),
		Description: base.Description,
		Image:       imageFor(axes.CategoryImages, base.Category, i),
		Dimensions:  domain.PlaceholderDimensions,
		Wood:        wood.Name,
		Finish:      fin.Name,
	}
	if n := len(axes.MaterialLabels); n > 0 {
		p.Material = axes.MaterialLabels[i%n]
	}
	if n := len(axes.Colors); n > 0 {
		p.Color = axes.Colors[i%n]
	}
	return p
}

func imageFor(pools map[string][]string, category string, i int) string {
	pool := pools[category]
	if len(pool) == 0 {
		return ""
	}
	return pool[i%len(pool)]
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
