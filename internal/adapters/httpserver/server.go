package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/vishwakarma/internal/adapters/export/xlsx"
	"github.com/phenrril/vishwakarma/internal/domain"
	"github.com/phenrril/vishwakarma/internal/usecase"
)

type Deps struct {
	Products   *usecase.ProductUC
	Carpenters *usecase.CarpenterUC
	Builder    *usecase.BuilderUC
	Style      *usecase.StyleUC
	Images     domain.ImageLookup

	SessionKey   string
	AdminToken   string
	BaseURL      string
	RateLimitRPM int
}

type Server struct {
	router     chi.Router
	products   *usecase.ProductUC
	carpenters *usecase.CarpenterUC
	builder    *usecase.BuilderUC
	style      *usecase.StyleUC
	images     domain.ImageLookup

	sessionKey []byte
	adminToken string
	baseURL    string
}

func New(d Deps) http.Handler {
	s := &Server{
		router:     chi.NewRouter(),
		products:   d.Products,
		carpenters: d.Carpenters,
		builder:    d.Builder,
		style:      d.Style,
		images:     d.Images,
		sessionKey: []byte(d.SessionKey),
		adminToken: d.AdminToken,
		baseURL:    strings.TrimRight(d.BaseURL, "/"),
	}
	if len(s.sessionKey) == 0 {
		s.sessionKey = []byte("dev-insecure")
	}
	s.routes()

	rpm := d.RateLimitRPM
	if rpm <= 0 {
		rpm = 120
	}
	return Chain(s.router,
		RateLimit(rpm),
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	r := s.router
	r.Get("/healthz", s.handleHealth)
	r.Get("/robots.txt", s.handleRobots)
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.apiProducts)
		r.Get("/products/{slug}", s.apiProductBySlug)
		r.Get("/categories", s.apiCategories)
		r.Get("/facets", s.apiFacets)
		r.Get("/images/{id}", s.apiImage)

		// filtros de la tienda: cambios en borrador y aplicados, guardados en cookie firmada
		r.Get("/shop", s.apiShop)
		r.Post("/shop/filters", s.apiShopEdit)
		r.Post("/shop/filters/apply", s.apiShopApply)
		r.Post("/shop/filters/reset", s.apiShopReset)

		r.Get("/carpenters", s.apiCarpenters)
		r.Get("/carpenters/specialties", s.apiSpecialties)
		r.Get("/carpenters/{id}", s.apiCarpenter)
		r.Get("/carpenters/{id}/quote", s.apiBookingQuote)

		r.Get("/builder/options", s.apiBuilderOptions)
		r.Post("/builder/estimate", s.apiBuilderEstimate)

		r.Post("/style-quiz", s.apiStyleQuiz)
		r.Post("/recommendations", s.apiRecommendations)
	})

	r.Get("/admin/export/xlsx", s.handleAdminExport)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "products": s.products.Count()})
}

type productView struct {
	domain.Product
	ImageURL  string `json:"image_url"`
	ImageHint string `json:"image_hint"`
}

func (s *Server) views(list []domain.Product) []productView {
	out := make([]productView, 0, len(list))
	for _, p := range list {
		im := s.images.Resolve(p.Image)
		out = append(out, productView{Product: p, ImageURL: im.URL, ImageHint: im.Hint})
	}
	return out
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	f := s.parseProductFilter(r.URL.Query())
	list, total, err := s.products.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      s.views(list),
		"total":      total,
		"page":       max(f.Page, 1),
		"no_results": total == 0,
		"filter":     f,
	})
}

// parseProductFilter parte de los valores por defecto; un número mal formado se ignora.
func (s *Server) parseProductFilter(qv url.Values) domain.ProductFilter {
	f := s.products.DefaultFilter()
	f.Query = strings.TrimSpace(qv.Get("q"))
	if c := qv.Get("category"); c != "" {
		f.Category = s.resolveCategory(c)
	}
	if v, err := strconv.ParseInt(qv.Get("max_price"), 10, 64); err == nil {
		f.PriceCeiling = max(v, 0)
	}
	f.Materials = splitMulti(qv["material"])
	f.Color = strings.TrimSpace(qv.Get("color"))
	f.Sort = qv.Get("sort")
	f.Page, _ = strconv.Atoi(qv.Get("page"))
	f.PageSize, _ = strconv.Atoi(qv.Get("page_size"))
	return f
}

func (s *Server) resolveCategory(v string) string {
	c := s.products.CategoryBySlug(v)
	if c.Slug == domain.CategoryAll {
		return domain.CategoryAll
	}
	return c.Name
}

func (s *Server) apiProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := s.products.GetBySlug(r.Context(), slug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrNotFound
		}
		writeError(w, err)
		return
	}
	views := s.views([]domain.Product{*p})
	writeJSON(w, http.StatusOK, map[string]any{
		"product":       views[0],
		"related":       s.views(s.products.Related(r.Context(), p)),
		"canonical_url": s.canonicalBase(r) + "/shop/" + p.Slug,
	})
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.products.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": cats})
}

func (s *Server) apiFacets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.products.Facets(r.Context()))
}

func (s *Server) apiImage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.images.Resolve(chi.URLParam(r, "id")))
}

func (s *Server) apiCarpenters(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	f := s.carpenters.DefaultFilter()
	f.Query = strings.TrimSpace(qv.Get("q"))
	f.Specialties = splitMulti(qv["specialty"])
	if v, err := strconv.Atoi(qv.Get("min_experience")); err == nil {
		f.MinExperience = max(v, 0)
	}
	if v, err := strconv.Atoi(qv.Get("max_experience")); err == nil {
		f.MaxExperience = max(v, 0)
	}
	list, err := s.carpenters.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": len(list), "no_results": len(list) == 0, "filter": f})
}

func (s *Server) apiSpecialties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.carpenters.Specialties(r.Context())})
}

func (s *Server) apiCarpenter(w http.ResponseWriter, r *http.Request) {
	c, err := s.carpenters.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"carpenter": c, "image": s.images.Resolve(c.Image)})
}

func (s *Server) apiBookingQuote(w http.ResponseWriter, r *http.Request) {
	pay := domain.PaymentOption(strings.ToLower(r.URL.Query().Get("payment")))
	q, err := s.carpenters.Quote(r.Context(), chi.URLParam(r, "id"), pay)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) apiBuilderOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"options": s.builder.Options(), "default": s.builder.DefaultConfig()})
}

func (s *Server) apiBuilderEstimate(w http.ResponseWriter, r *http.Request) {
	var cfg domain.BuildConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	est, err := s.builder.Estimate(cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *Server) apiStyleQuiz(w http.ResponseWriter, r *http.Request) {
	var in domain.StyleQuizInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	res, err := s.style.Quiz(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": res.Profile, "products": s.views(res.Products)})
}

func (s *Server) apiRecommendations(w http.ResponseWriter, r *http.Request) {
	var in domain.RecommendationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	rec, err := s.style.Recommend(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=catalog-"+time.Now().Format("20060102")+".xlsx")
	if err := xlsx.WriteCatalog(w, s.products.All(), s.carpenters.All()); err != nil {
		log.Error().Err(err).Msg("export xlsx")
	}
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if s.adminToken == "" || !secureCompare(r.Header.Get("X-Admin-Token"), s.adminToken) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return false
	}
	return true
}

// canonicalBase arma el esquema y host para URLs absolutas
func (s *Server) canonicalBase(r *http.Request) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}
	return scheme + "://" + host
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	base := s.canonicalBase(r)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	now := time.Now().Format("2006-01-02")
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n" + `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, page := range []string{"/", "/shop", "/carpenters", "/custom-builder", "/style-quiz"} {
		b.WriteString("\n  <url><loc>" + base + page + "</loc><lastmod>" + now + "</lastmod></url>")
	}
	for _, p := range s.products.All() {
		b.WriteString("\n  <url><loc>" + base + "/shop/" + url.PathEscape(p.Slug) + "</loc><lastmod>" + now + "</lastmod></url>")
	}
	b.WriteString("\n</urlset>")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin/\nSitemap: " + s.canonicalBase(r) + "/sitemap.xml\n"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrAdvisorUnavailable):
		code = http.StatusServiceUnavailable
	default:
		log.Error().Err(err).Msg("api")
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// splitMulti acepta tanto ?material=a&material=b como ?material=a,b
func splitMulti(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := 0; i < len(a); i++ {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
