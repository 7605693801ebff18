package usecase

import (
	"strings"

	"github.com/phenrril/vishwakarma/internal/domain"
)

type BuilderUC struct {
	opts domain.BuilderOptions
}

func NewBuilderUC(opts domain.BuilderOptions) *BuilderUC {
	return &BuilderUC{opts: opts}
}

func (uc *BuilderUC) Options() domain.BuilderOptions { return uc.opts }

// DefaultConfig es la primera opción de cada eje.
func (uc *BuilderUC) DefaultConfig() domain.BuildConfig {
	var c domain.BuildConfig
	if len(uc.opts.Types) > 0 {
		c.Type = uc.opts.Types[0].Name
	}
	if len(uc.opts.Woods) > 0 {
		c.Wood = uc.opts.Woods[0].Name
	}
	if len(uc.opts.Finishes) > 0 {
		c.Finish = uc.opts.Finishes[0].Name
	}
	return c
}

// Estimate resuelve los nombres (un nombre desconocido cae en la primera opción)
// y calcula el precio estimado sin redondear.
func (uc *BuilderUC) Estimate(cfg domain.BuildConfig) (*domain.BuildEstimate, error) {
	if len(uc.opts.Types) == 0 || len(uc.opts.Woods) == 0 || len(uc.opts.Finishes) == 0 {
		return nil, domain.ErrNotFound
	}
	t := uc.opts.Types[0]
	for _, o := range uc.opts.Types {
		if strings.EqualFold(o.Name, cfg.Type) {
			t = o
			break
		}
	}
	wood := pickOption(uc.opts.Woods, cfg.Wood)
	fin := pickOption(uc.opts.Finishes, cfg.Finish)

	est := &domain.BuildEstimate{
		Config: domain.BuildConfig{Type: t.Name, Wood: wood.Name, Finish: fin.Name},
		Price:  Estimate(t, wood, fin),
	}
	if uc.opts.ConsultationWood != "" && strings.EqualFold(wood.Name, uc.opts.ConsultationWood) {
		est.RequiresConsultation = true
		est.Notice = domain.ConsultationNotice
	}
	return est, nil
}

func pickOption(list []domain.BuildOption, name string) domain.BuildOption {
	for _, o := range list {
		if strings.EqualFold(o.Name, name) {
			return o
		}
	}
	return list[0]
}
