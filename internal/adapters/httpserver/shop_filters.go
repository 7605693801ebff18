package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/phenrril/vishwakarma/internal/domain"
	"github.com/phenrril/vishwakarma/internal/usecase"
)

const filterCookie = "shop_filters"

// readFilters devuelve el estado guardado o uno nuevo si la cookie falta o la firma no coincide.
func (s *Server) readFilters(r *http.Request) usecase.FilterState {
	fresh := usecase.NewFilterState(s.products.DefaultFilter())
	c, err := r.Cookie(filterCookie)
	if err != nil {
		return fresh
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return fresh
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, s.sessionKey)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return fresh
	}
	var st usecase.FilterState
	if err := json.Unmarshal(payload, &st); err != nil {
		return fresh
	}
	return st
}

func (s *Server) writeFilters(w http.ResponseWriter, st usecase.FilterState) {
	b, _ := json.Marshal(st)
	h := hmac.New(sha256.New, s.sessionKey)
	h.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{Name: filterCookie, Value: val, Path: "/", MaxAge: 60 * 60 * 24, HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// respondShop lista con los criterios activos; los cambios en borrador no afectan el listado.
func (s *Server) respondShop(w http.ResponseWriter, r *http.Request, st usecase.FilterState) {
	active := st.Active.Clone()
	qv := r.URL.Query()
	active.Sort = qv.Get("sort")
	active.Page, _ = strconv.Atoi(qv.Get("page"))
	active.PageSize, _ = strconv.Atoi(qv.Get("page_size"))
	list, total, err := s.products.List(r.Context(), active)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state":      st,
		"items":      s.views(list),
		"total":      total,
		"no_results": total == 0,
		"facets":     s.products.Facets(r.Context()),
	})
}

func (s *Server) apiShop(w http.ResponseWriter, r *http.Request) {
	st := s.readFilters(r)
	// /shop?category=beds entra con la categoría ya aplicada
	if c := r.URL.Query().Get("category"); c != "" {
		cat := s.resolveCategory(c)
		st.Staged.Category = cat
		st.Active.Category = cat
		s.writeFilters(w, st)
	}
	s.respondShop(w, r, st)
}

type filterEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) apiShopEdit(w http.ResponseWriter, r *http.Request) {
	var in filterEdit
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	if in.Field == usecase.FieldCategory && in.Value != "" {
		in.Value = s.resolveCategory(in.Value)
	}
	st, err := s.readFilters(r).Edit(in.Field, in.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeFilters(w, st)
	s.respondShop(w, r, st)
}

func (s *Server) apiShopApply(w http.ResponseWriter, r *http.Request) {
	st := s.readFilters(r).Apply()
	s.writeFilters(w, st)
	s.respondShop(w, r, st)
}

func (s *Server) apiShopReset(w http.ResponseWriter, r *http.Request) {
	st := s.readFilters(r).Reset(s.products.DefaultFilter())
	s.writeFilters(w, st)
	s.respondShop(w, r, st)
}
