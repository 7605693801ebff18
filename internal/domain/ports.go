package domain

import "context"

type Image struct {
	ID   string `yaml:"id" json:"id"`
	URL  string `yaml:"url" json:"url"`
	Hint string `yaml:"hint" json:"hint"`
}

type ImageLookup interface {
	Find(id string) (Image, bool)
	Resolve(id string) Image
}

// CatalogMirror replica el catálogo generado en una base para reportes.
type CatalogMirror interface {
	Migrate(ctx context.Context) error
	SyncProducts(ctx context.Context, products []Product) error
	SyncCarpenters(ctx context.Context, carpenters []Carpenter) error
}
