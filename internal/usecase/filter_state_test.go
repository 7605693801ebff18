package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/vishwakarma/internal/domain"
)

func TestFilterState_EditOnlyTouchesStaged(t *testing.T) {
	def := DefaultProductFilter(sampleProducts())
	st := NewFilterState(def)

	next, err := st.Edit(FieldCategory, "Sofa")
	require.NoError(t, err)
	assert.Equal(t, "Sofa", next.Staged.Category)
	assert.Equal(t, domain.CategoryAll, next.Active.Category)
	// el estado original no cambia
	assert.Equal(t, domain.CategoryAll, st.Staged.Category)

	items := FilterProducts(sampleProducts(), next.Active)
	assert.Len(t, items, 5, "el listado sigue usando los criterios activos")
}

func TestFilterState_Apply(t *testing.T) {
	st := NewFilterState(DefaultProductFilter(sampleProducts()))
	st, err := st.Edit(FieldMaxPrice, "50000")
	require.NoError(t, err)
	st, err = st.Edit(FieldMaterial, "Metal")
	require.NoError(t, err)

	st = st.Apply()
	assert.Equal(t, st.Staged, st.Active)
	assert.Equal(t, []string{"4"}, ids(FilterProducts(sampleProducts(), st.Active)))

	// Active no comparte el slice con Staged
	st.Staged.Materials[0] = "Glass"
	assert.Equal(t, "Metal", st.Active.Materials[0])
}

func TestFilterState_MaterialToggles(t *testing.T) {
	st := NewFilterState(DefaultProductFilter(nil))
	st, _ = st.Edit(FieldMaterial, "Wood")
	st, _ = st.Edit(FieldMaterial, "Glass")
	assert.Equal(t, []string{"Wood", "Glass"}, st.Staged.Materials)

	st, _ = st.Edit(FieldMaterial, "Wood")
	assert.Equal(t, []string{"Glass"}, st.Staged.Materials)
}

func TestFilterState_Reset(t *testing.T) {
	def := DefaultProductFilter(sampleProducts())
	st := NewFilterState(def)
	st, _ = st.Edit(FieldQuery, "oak")
	st, _ = st.Edit(FieldColor, "Natural")
	st = st.Apply()

	st = st.Reset(def)
	assert.Equal(t, def, st.Staged)
	assert.Equal(t, def, st.Active)
}

func TestFilterState_EditErrors(t *testing.T) {
	st := NewFilterState(DefaultProductFilter(nil))

	_, err := st.Edit("size", "xl")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilterState_MaxPriceClampsOrIgnores(t *testing.T) {
	st := NewFilterState(DefaultProductFilter(sampleProducts()))
	st, err := st.Edit(FieldMaxPrice, "30000")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"valid", " 45000 ", 45000},
		{"not_a_number_keeps_previous", "mucho", 30000},
		{"empty_keeps_previous", "", 30000},
		{"negative_clamps_to_zero", "-500", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := st.Edit(FieldMaxPrice, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next.Staged.PriceCeiling)
			assert.Equal(t, int64(57000), next.Active.PriceCeiling)
		})
	}
}

func TestFilterState_EmptyCategoryMeansAll(t *testing.T) {
	st := NewFilterState(DefaultProductFilter(nil))
	st, err := st.Edit(FieldCategory, "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAll, st.Staged.Category)
}
