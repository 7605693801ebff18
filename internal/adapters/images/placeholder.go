package images

import (
	"strings"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const (
	FallbackURL  = "https://picsum.photos/seed/placeholder/600/400"
	FallbackHint = "furniture piece"
)

// Placeholders resuelve claves de imagen a URLs; una clave desconocida nunca falla.
type Placeholders struct {
	byID map[string]domain.Image
}

func NewPlaceholders(list []domain.Image) *Placeholders {
	m := make(map[string]domain.Image, len(list))
	for _, im := range list {
		id := strings.TrimSpace(im.ID)
		if id == "" || strings.TrimSpace(im.URL) == "" {
			continue
		}
		m[id] = im
	}
	return &Placeholders{byID: m}
}

func (p *Placeholders) Find(id string) (domain.Image, bool) {
	im, ok := p.byID[strings.TrimSpace(id)]
	return im, ok
}

func (p *Placeholders) Resolve(id string) domain.Image {
	if im, ok := p.Find(id); ok {
		if im.Hint == "" {
			im.Hint = FallbackHint
		}
		return im
	}
	return domain.Image{ID: id, URL: FallbackURL, Hint: FallbackHint}
}
