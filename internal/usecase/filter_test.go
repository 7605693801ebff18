package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phenrril/vishwakarma/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Sheesham Natural Finish Sofa", Category: "Sofa", Price: 54000, Material: "Wood", Color: domain.Color{Name: "Natural"}},
		{ID: "2", Name: "Teak Wood Walnut Bed", Category: "Beds", Price: 57000, Material: "Metal", Color: domain.Color{Name: "Walnut"}},
		{ID: "3", Name: "Modern Noir Office Chair", Category: "Office", Price: 9600, Material: "Fabric", Color: domain.Color{Name: "Black"}},
		{ID: "4", Name: "Royal Oak Honey Sofa", Category: "Sofa", Price: 49500, Material: "Metal", Color: domain.Color{Name: "Natural"}},
		{ID: "5", Name: "Acacia Vintage Bookshelf", Category: "Storage", Price: 22000, Material: "Glass", Color: domain.Color{Name: "White"}},
	}
}

func ids(list []domain.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	items := sampleProducts()
	def := DefaultProductFilter(items)

	tests := []struct {
		name string
		edit func(f *domain.ProductFilter)
		want []string
	}{
		{"defaults_return_everything_in_order", func(f *domain.ProductFilter) {}, []string{"1", "2", "3", "4", "5"}},
		{"query_case_insensitive", func(f *domain.ProductFilter) { f.Query = "SOFA" }, []string{"1", "4"}},
		{"category_case_insensitive", func(f *domain.ProductFilter) { f.Category = "sofa" }, []string{"1", "4"}},
		{"category_empty_is_all", func(f *domain.ProductFilter) { f.Category = "" }, []string{"1", "2", "3", "4", "5"}},
		{"category_unknown", func(f *domain.ProductFilter) { f.Category = "Lamps" }, []string{}},
		{"price_ceiling_inclusive", func(f *domain.ProductFilter) { f.PriceCeiling = 49500 }, []string{"3", "4", "5"}},
		{"price_ceiling_zero", func(f *domain.ProductFilter) { f.PriceCeiling = 0 }, []string{}},
		{"price_ceiling_negative", func(f *domain.ProductFilter) { f.PriceCeiling = -1 }, []string{}},
		{"materials_or", func(f *domain.ProductFilter) { f.Materials = []string{"Metal", "Glass"} }, []string{"2", "4", "5"}},
		{"color_exact", func(f *domain.ProductFilter) { f.Color = "Natural" }, []string{"1", "4"}},
		{"conjunction", func(f *domain.ProductFilter) {
			f.Category = "Sofa"
			f.Materials = []string{"Metal"}
			f.PriceCeiling = 50000
		}, []string{"4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := def.Clone()
			tt.edit(&f)
			assert.Equal(t, tt.want, ids(FilterProducts(items, f)))
		})
	}
}

func TestFilterProducts_IsSubsetAndPure(t *testing.T) {
	items := sampleProducts()
	before := sampleProducts()
	f := DefaultProductFilter(items)
	f.Query = "oak"

	got := FilterProducts(items, f)
	assert.Equal(t, before, items)
	for _, p := range got {
		assert.Contains(t, items, p)
	}
	assert.Equal(t, got, FilterProducts(items, f))
}

func TestDefaultProductFilter(t *testing.T) {
	f := DefaultProductFilter(sampleProducts())
	assert.Equal(t, domain.CategoryAll, f.Category)
	assert.Equal(t, int64(57000), f.PriceCeiling)
	assert.Empty(t, f.Materials)

	assert.Equal(t, int64(0), DefaultProductFilter(nil).PriceCeiling)
}

func sampleCarpenters() []domain.Carpenter {
	return []domain.Carpenter{
		{ID: "1", Name: "Ramesh Kumar", Experience: 15, Specialties: []string{"Custom Furniture", "Repairs", "Polishing"}},
		{ID: "2", Name: "Suresh Singh", Experience: 20, Specialties: []string{"Antique Restoration", "Intricate Carving"}},
		{ID: "3", Name: "Vikram Sharma", Experience: 8, Specialties: []string{"Modern Designs", "Wardrobe Assembly"}},
		{ID: "4", Name: "Anil Verma", Experience: 12, Specialties: []string{"Kitchen Cabinets", "Custom Furniture"}},
	}
}

func TestFilterCarpenters(t *testing.T) {
	items := sampleCarpenters()
	def := DefaultCarpenterFilter(items)

	tests := []struct {
		name string
		edit func(f *domain.CarpenterFilter)
		want []string
	}{
		{"defaults", func(f *domain.CarpenterFilter) {}, []string{"1", "2", "3", "4"}},
		{"query", func(f *domain.CarpenterFilter) { f.Query = "sh" }, []string{"1", "2", "3"}},
		{"single_specialty", func(f *domain.CarpenterFilter) { f.Specialties = []string{"Custom Furniture"} }, []string{"1", "4"}},
		{"specialties_and", func(f *domain.CarpenterFilter) { f.Specialties = []string{"Custom Furniture", "Repairs"} }, []string{"1"}},
		{"experience_range_inclusive", func(f *domain.CarpenterFilter) {
			f.MinExperience = 12
			f.MaxExperience = 15
		}, []string{"1", "4"}},
		{"empty_range", func(f *domain.CarpenterFilter) {
			f.MinExperience = 21
		}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := def
			tt.edit(&f)
			assert.Equal(t, tt.want, carpenterIDs(FilterCarpenters(items, f)))
		})
	}
}

func carpenterIDs(list []domain.Carpenter) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestDefaultCarpenterFilter(t *testing.T) {
	f := DefaultCarpenterFilter(sampleCarpenters())
	assert.Equal(t, 0, f.MinExperience)
	assert.Equal(t, domain.ExperienceCeilingFloor, f.MaxExperience)

	veteran := append(sampleCarpenters(), domain.Carpenter{ID: "9", Experience: 42})
	assert.Equal(t, 42, DefaultCarpenterFilter(veteran).MaxExperience)
}
