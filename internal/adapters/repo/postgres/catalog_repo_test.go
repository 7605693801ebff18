package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/vishwakarma/internal/domain"
)

func newTestRepo(t *testing.T) *CatalogRepo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	repo := NewCatalogRepo(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Seq: 0, Name: "Sheesham Natural Finish Sofa", Slug: "sheesham-natural-finish-sofa-1", Category: "Sofa", Price: 54000, Color: domain.Color{Name: "Natural", Hex: "#D2B48C"}},
		{ID: "2", Seq: 1, Name: "Sheesham Walnut Sofa", Slug: "sheesham-walnut-sofa-2", Category: "Sofa", Price: 54000},
		{ID: "3", Seq: 2, Name: "Teak Wood Natural Finish Bed", Slug: "teak-wood-natural-finish-bed-3", Category: "Beds", Price: 57000},
	}
}

func TestCatalogRepo_SyncProducts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SyncProducts(ctx, sampleProducts()))

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "Natural", list[0].Color.Name)
	assert.False(t, list[0].SyncedAt.IsZero())

	p, err := repo.FindBySlug(ctx, "teak-wood-natural-finish-bed-3")
	require.NoError(t, err)
	assert.Equal(t, int64(57000), p.Price)

	cats, err := repo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beds", "Sofa"}, cats)
}

func TestCatalogRepo_SyncProducts_ReplacesPreviousRun(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.SyncProducts(ctx, sampleProducts()))

	next := sampleProducts()[:2]
	next[0].Price = 60000
	require.NoError(t, repo.SyncProducts(ctx, next))

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(60000), list[0].Price)

	_, err = repo.FindBySlug(ctx, "teak-wood-natural-finish-bed-3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogRepo_SyncCarpenters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	roster := []domain.Carpenter{
		{ID: "1", Name: "Ramesh Kumar", Experience: 15, Rating: 4.8, HourlyRate: 500, Specialties: []string{"Custom Furniture", "Repairs"}},
		{ID: "2", Name: "Suresh Singh", Experience: 20, Rating: 4.9, HourlyRate: 650, Specialties: []string{"Intricate Carving"}},
	}
	require.NoError(t, repo.SyncCarpenters(ctx, roster))
	require.NoError(t, repo.SyncCarpenters(ctx, roster))

	list, err := repo.ListCarpenters(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"Custom Furniture", "Repairs"}, list[0].Specialties)
}
