package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const batchSize = 200

// CatalogRepo replica el catálogo generado y el plantel en la base.
// La tienda sigue sirviendo desde memoria; estas tablas son para reportes.
type CatalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&domain.Product{}, &domain.Carpenter{})
}

// SyncProducts reemplaza el contenido de la tabla por el catálogo recibido.
func (r *CatalogRepo) SyncProducts(ctx context.Context, products []domain.Product) error {
	now := time.Now()
	rows := make([]domain.Product, len(products))
	ids := make([]string, 0, len(products))
	for i, p := range products {
		p.SyncedAt = now
		rows[i] = p
		ids = append(ids, p.ID)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// los slugs llevan el id, así que no chocan entre generaciones distintas
		del := tx.Where("1 = 1")
		if len(ids) > 0 {
			del = tx.Where("id NOT IN ?", ids)
		}
		if err := del.Delete(&domain.Product{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&rows, batchSize).Error
	})
}

func (r *CatalogRepo) SyncCarpenters(ctx context.Context, carpenters []domain.Carpenter) error {
	if len(carpenters) == 0 {
		return nil
	}
	rows := append([]domain.Carpenter(nil), carpenters...)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&rows, batchSize).Error
}

func (r *CatalogRepo) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var list []domain.Product
	if err := r.db.WithContext(ctx).Order("seq asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CatalogRepo) ListCarpenters(ctx context.Context) ([]domain.Carpenter, error) {
	var list []domain.Carpenter
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CatalogRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	cats := []string{}
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("category").Where("category <> ''").Order("category asc").Pluck("category", &cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
