package domain

const (
	SortDefault   = ""
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"

	// tope por defecto del rango de experiencia cuando el plantel es chico
	ExperienceCeilingFloor = 30
)

// ProductFilter son los criterios del listado de la tienda.
// Category vacía o "all" no restringe; Materials vacío no restringe; Color vacío no restringe.
type ProductFilter struct {
	Query        string   `json:"q"`
	Category     string   `json:"category"`
	PriceCeiling int64    `json:"max_price"`
	Materials    []string `json:"materials"`
	Color        string   `json:"color"`

	Sort     string `json:"sort,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

// Clone copia el filtro sin compartir el slice de materiales.
func (f ProductFilter) Clone() ProductFilter {
	out := f
	if f.Materials != nil {
		out.Materials = append([]string(nil), f.Materials...)
	}
	return out
}

type CarpenterFilter struct {
	Query         string   `json:"q"`
	Specialties   []string `json:"specialties"`
	MinExperience int      `json:"min_experience"`
	MaxExperience int      `json:"max_experience"`
}

type Facets struct {
	Categories []Category `json:"categories"`
	Materials  []string   `json:"materials"`
	Colors     []Color    `json:"colors"`
	MaxPrice   int64      `json:"max_price"`
}
