package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const quizProducts = 4

// StyleUC arma el perfil de estilo del quiz usando el asesor externo.
// Pedidos idénticos en vuelo comparten una sola llamada.
type StyleUC struct {
	Advisor  domain.StyleAdvisor
	Products *ProductUC

	group singleflight.Group
}

func (uc *StyleUC) Quiz(ctx context.Context, in domain.StyleQuizInput) (*domain.StyleQuizResult, error) {
	in.Room = strings.TrimSpace(in.Room)
	in.StyleImages = cleanList(in.StyleImages)
	in.Colors = cleanList(in.Colors)
	if in.Room == "" {
		return nil, fmt.Errorf("%w: room vacío", domain.ErrInvalidInput)
	}
	if len(in.StyleImages) == 0 || len(in.StyleImages) > domain.MaxQuizStyles {
		return nil, fmt.Errorf("%w: elegir entre 1 y %d estilos", domain.ErrInvalidInput, domain.MaxQuizStyles)
	}
	if uc.Advisor == nil {
		return nil, domain.ErrAdvisorUnavailable
	}

	cats := uc.categoryNames(ctx)
	key := "quiz|" + strings.ToLower(in.Room) + "|" + strings.Join(in.StyleImages, ",") + "|" + strings.Join(in.Colors, ",")
	// la llamada compartida no se corta si se va el primer cliente; el asesor tiene su propio timeout
	ch := uc.group.DoChan(key, func() (any, error) {
		return uc.Advisor.StyleProfile(context.WithoutCancel(ctx), in, cats)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		log.Error().Err(res.Err).Str("room", in.Room).Msg("style quiz")
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, res.Err)
	}
	profile := res.Val.(*domain.StyleProfile)
	log.Debug().Str("style", profile.StyleName).Bool("shared", res.Shared).Msg("style quiz")

	recCats := make([]string, 0, len(profile.Recommendations))
	for _, r := range profile.Recommendations {
		recCats = append(recCats, r.Category)
	}
	return &domain.StyleQuizResult{
		Profile:  *profile,
		Products: uc.Products.FirstPerCategory(recCats, quizProducts),
	}, nil
}

func (uc *StyleUC) Recommend(ctx context.Context, in domain.RecommendationInput) (*domain.Recommendation, error) {
	if strings.TrimSpace(in.StylePreferences) == "" && strings.TrimSpace(in.RoomCharacteristics) == "" {
		return nil, fmt.Errorf("%w: faltan preferencias", domain.ErrInvalidInput)
	}
	if uc.Advisor == nil {
		return nil, domain.ErrAdvisorUnavailable
	}
	rec, err := uc.Advisor.Recommend(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("recommendations")
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	return rec, nil
}

func (uc *StyleUC) categoryNames(ctx context.Context) []string {
	cats, _ := uc.Products.Categories(ctx)
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Name)
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
