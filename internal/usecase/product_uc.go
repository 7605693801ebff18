package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const (
	defaultPageSize = 24
	maxPageSize     = 200
	memoCap         = 256
	relatedCount    = 4
)

// ProductUC sirve el catálogo generado, que es inmutable después de construirse.
type ProductUC struct {
	products   []domain.Product
	categories []domain.Category
	materials  []string
	colors     []domain.Color
	bySlug     map[string]int
	defaults   domain.ProductFilter

	mu   sync.Mutex
	memo map[string][]domain.Product
}

func NewProductUC(products []domain.Product, categories []domain.Category, materials []string, colors []domain.Color) *ProductUC {
	uc := &ProductUC{
		products:   products,
		categories: categories,
		materials:  materials,
		colors:     colors,
		bySlug:     make(map[string]int, len(products)),
		defaults:   DefaultProductFilter(products),
		memo:       map[string][]domain.Product{},
	}
	for i, p := range products {
		if _, dup := uc.bySlug[p.Slug]; dup {
			// slug repetido: no se puede rutear a ninguno
			uc.bySlug[p.Slug] = -1
			continue
		}
		uc.bySlug[p.Slug] = i
	}
	return uc
}

func (uc *ProductUC) DefaultFilter() domain.ProductFilter { return uc.defaults.Clone() }

func (uc *ProductUC) Count() int { return len(uc.products) }

// All devuelve una copia del catálogo completo en orden de generación.
func (uc *ProductUC) All() []domain.Product {
	return append([]domain.Product(nil), uc.products...)
}

func (uc *ProductUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	matched := uc.filtered(f)
	total := int64(len(matched))

	sorted := sortProducts(matched, f.Sort)

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	offset := (f.Page - 1) * f.PageSize
	if offset >= len(sorted) {
		return []domain.Product{}, total, nil
	}
	end := offset + f.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return append([]domain.Product(nil), sorted[offset:end]...), total, nil
}

func (uc *ProductUC) filtered(f domain.ProductFilter) []domain.Product {
	key := memoKey(f)
	uc.mu.Lock()
	if hit, ok := uc.memo[key]; ok {
		uc.mu.Unlock()
		return hit
	}
	uc.mu.Unlock()

	res := FilterProducts(uc.products, f)

	uc.mu.Lock()
	if len(uc.memo) >= memoCap {
		uc.memo = map[string][]domain.Product{}
	}
	uc.memo[key] = res
	uc.mu.Unlock()
	return res
}

func memoKey(f domain.ProductFilter) string {
	mats := append([]string(nil), f.Materials...)
	sort.Strings(mats)
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(f.Query)),
		strings.ToLower(strings.TrimSpace(f.Category)),
		strconv.FormatInt(f.PriceCeiling, 10),
		strings.Join(mats, "\x1f"),
		f.Color,
	}, "\x1e")
}

func sortProducts(in []domain.Product, mode string) []domain.Product {
	if mode == domain.SortDefault {
		return in
	}
	out := append([]domain.Product(nil), in...)
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default:
		return in
	}
	return out
}

func (uc *ProductUC) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, errors.New("slug vacío")
	}
	i, ok := uc.bySlug[slug]
	if !ok || i < 0 {
		return nil, domain.ErrNotFound
	}
	p := uc.products[i]
	return &p, nil
}

// Related devuelve productos de la misma categoría, excluyendo al propio.
func (uc *ProductUC) Related(ctx context.Context, p *domain.Product) []domain.Product {
	out := []domain.Product{}
	for _, o := range uc.products {
		if o.Category == p.Category && o.ID != p.ID {
			out = append(out, o)
			if len(out) == relatedCount {
				break
			}
		}
	}
	return out
}

func (uc *ProductUC) Categories(ctx context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), uc.categories...), nil
}

// CategoryBySlug acepta slug o nombre y cae en "all" cuando no existe.
func (uc *ProductUC) CategoryBySlug(slug string) domain.Category {
	slug = strings.TrimSpace(slug)
	for _, c := range uc.categories {
		if strings.EqualFold(c.Slug, slug) || strings.EqualFold(c.Name, slug) {
			return c
		}
	}
	return domain.Category{Slug: domain.CategoryAll, Name: "All"}
}

func (uc *ProductUC) Facets(ctx context.Context) domain.Facets {
	return domain.Facets{
		Categories: append([]domain.Category(nil), uc.categories...),
		Materials:  append([]string(nil), uc.materials...),
		Colors:     append([]domain.Color(nil), uc.colors...),
		MaxPrice:   uc.defaults.PriceCeiling,
	}
}

// FirstPerCategory toma el primer producto no repetido de cada categoría, hasta limit.
func (uc *ProductUC) FirstPerCategory(categories []string, limit int) []domain.Product {
	out := []domain.Product{}
	seen := map[string]struct{}{}
	for _, cat := range categories {
		if len(out) == limit {
			break
		}
		for _, p := range uc.products {
			if !strings.EqualFold(p.Category, cat) {
				continue
			}
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			break
		}
	}
	return out
}
