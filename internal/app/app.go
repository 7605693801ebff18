package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/phenrril/vishwakarma/internal/adapters/ai/openai"
	"github.com/phenrril/vishwakarma/internal/adapters/httpserver"
	"github.com/phenrril/vishwakarma/internal/adapters/images"
	"github.com/phenrril/vishwakarma/internal/adapters/repo/postgres"
	"github.com/phenrril/vishwakarma/internal/adapters/seed"
	"github.com/phenrril/vishwakarma/internal/config"
	"github.com/phenrril/vishwakarma/internal/domain"
	"github.com/phenrril/vishwakarma/internal/usecase"
)

type App struct {
	Config      *config.Config
	DB          *gorm.DB
	Mirror      domain.CatalogMirror
	Images      domain.ImageLookup
	ProductUC   *usecase.ProductUC
	CarpenterUC *usecase.CarpenterUC
	BuilderUC   *usecase.BuilderUC
	StyleUC     *usecase.StyleUC
}

// NewApp genera el catálogo una sola vez y arma los casos de uso.
// db puede ser nil: la base sólo recibe una copia para reportes.
func NewApp(cfg *config.Config, db *gorm.DB) (*App, error) {
	s, err := seed.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	axes := s.Axes
	if cfg.CatalogLimit > 0 {
		axes.Limit = cfg.CatalogLimit
	}
	products := usecase.GenerateCatalog(axes)
	if len(products) == 0 {
		return nil, fmt.Errorf("catálogo vacío")
	}

	a := &App{Config: cfg, DB: db}
	a.Images = images.NewPlaceholders(s.Images)
	a.ProductUC = usecase.NewProductUC(products, s.Categories, s.Axes.MaterialLabels, s.Axes.Colors)
	a.CarpenterUC = usecase.NewCarpenterUC(s.Carpenters)
	a.BuilderUC = usecase.NewBuilderUC(s.Builder)
	a.StyleUC = &usecase.StyleUC{Products: a.ProductUC}
	if cfg.OpenAIKey != "" {
		a.StyleUC.Advisor = openai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	} else {
		log.Warn().Msg("OPENAI_API_KEY vacío: quiz de estilo y recomendaciones deshabilitados")
	}
	if db != nil {
		a.Mirror = postgres.NewCatalogRepo(db)
	}

	log.Info().
		Int("products", len(products)).
		Int("carpenters", len(s.Carpenters)).
		Int("categories", len(s.Categories)).
		Msg("catálogo generado")
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Products:     a.ProductUC,
		Carpenters:   a.CarpenterUC,
		Builder:      a.BuilderUC,
		Style:        a.StyleUC,
		Images:       a.Images,
		SessionKey:   a.Config.SessionKey,
		AdminToken:   a.Config.AdminToken,
		BaseURL:      a.Config.BaseURL,
		RateLimitRPM: a.Config.RateLimitRPM,
	})
}

// MigrateAndSeed replica catálogo y plantel en la base si hay una configurada.
func (a *App) MigrateAndSeed(ctx context.Context) error {
	if a.Mirror == nil {
		return nil
	}
	if err := a.Mirror.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := a.Mirror.SyncProducts(ctx, a.ProductUC.All()); err != nil {
		return fmt.Errorf("sync products: %w", err)
	}
	if err := a.Mirror.SyncCarpenters(ctx, a.CarpenterUC.All()); err != nil {
		return fmt.Errorf("sync carpenters: %w", err)
	}
	return nil
}
