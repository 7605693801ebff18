package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/phenrril/vishwakarma/internal/domain"
)

type CarpenterUC struct {
	carpenters []domain.Carpenter
	defaults   domain.CarpenterFilter
}

func NewCarpenterUC(roster []domain.Carpenter) *CarpenterUC {
	return &CarpenterUC{carpenters: roster, defaults: DefaultCarpenterFilter(roster)}
}

func (uc *CarpenterUC) DefaultFilter() domain.CarpenterFilter { return uc.defaults }

func (uc *CarpenterUC) All() []domain.Carpenter {
	return append([]domain.Carpenter(nil), uc.carpenters...)
}

func (uc *CarpenterUC) List(ctx context.Context, f domain.CarpenterFilter) ([]domain.Carpenter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FilterCarpenters(uc.carpenters, f), nil
}

func (uc *CarpenterUC) GetByID(ctx context.Context, id string) (*domain.Carpenter, error) {
	for _, c := range uc.carpenters {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Specialties lista las especialidades distintas del plantel, ordenadas.
func (uc *CarpenterUC) Specialties(ctx context.Context) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, c := range uc.carpenters {
		for _, s := range c.Specialties {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Quote calcula lo que se cobra al reservar. Pagar ahora incluye dos horas de servicio.
func (uc *CarpenterUC) Quote(ctx context.Context, id string, pay domain.PaymentOption) (*domain.BookingQuote, error) {
	c, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q := &domain.BookingQuote{CarpenterID: c.ID, Payment: pay, HourlyRate: c.HourlyRate}
	switch pay {
	case domain.PayNow:
		q.Hours = domain.PrepaidHours
		q.AmountDue = c.HourlyRate * domain.PrepaidHours
	case domain.PayLater, "":
		q.Payment = domain.PayLater
	default:
		return nil, fmt.Errorf("%w: forma de pago %q", domain.ErrInvalidInput, pay)
	}
	return q, nil
}
