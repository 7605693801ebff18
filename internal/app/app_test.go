package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/vishwakarma/internal/adapters/repo/postgres"
	"github.com/phenrril/vishwakarma/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{Port: "0", SessionKey: "test-key", RateLimitRPM: 1000}
}

func TestNewApp_FullCatalog(t *testing.T) {
	a, err := NewApp(testConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, 15*7*5, a.ProductUC.Count())
	assert.Nil(t, a.Mirror)
	assert.Nil(t, a.StyleUC.Advisor)
	require.NoError(t, a.MigrateAndSeed(context.Background()))

	first := a.ProductUC.All()[0]
	assert.Equal(t, "Sheesham Natural Finish Sofa", first.Name)
	assert.Equal(t, int64(54000), first.Price)
}

func TestNewApp_LimitAndAdvisor(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogLimit = 12
	cfg.OpenAIKey = "sk-test"
	a, err := NewApp(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, a.ProductUC.Count())
	assert.NotNil(t, a.StyleUC.Advisor)
}

func TestNewApp_BadCatalogFile(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = "/nonexistent/catalog.yaml"
	_, err := NewApp(cfg, nil)
	assert.Error(t, err)
}

func TestMigrateAndSeed_Mirror(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	cfg := testConfig()
	cfg.CatalogLimit = 20
	a, err := NewApp(cfg, db)
	require.NoError(t, err)
	require.NoError(t, a.MigrateAndSeed(context.Background()))

	repo := postgres.NewCatalogRepo(db)
	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 20)
	carpenters, err := repo.ListCarpenters(context.Background())
	require.NoError(t, err)
	assert.Len(t, carpenters, 25)
}

func TestHTTPHandler_Health(t *testing.T) {
	a, err := NewApp(testConfig(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"products":525`))
}
