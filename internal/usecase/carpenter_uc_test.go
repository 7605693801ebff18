package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/vishwakarma/internal/domain"
)

func newTestCarpenterUC() *CarpenterUC {
	roster := sampleCarpenters()
	for i := range roster {
		roster[i].HourlyRate = int64(400 + 100*i)
	}
	return NewCarpenterUC(roster)
}

func TestCarpenterUC_Quote(t *testing.T) {
	ctx := context.Background()
	uc := newTestCarpenterUC()

	tests := []struct {
		name    string
		pay     domain.PaymentOption
		payment domain.PaymentOption
		hours   int
		due     int64
	}{
		{"pay_now_two_hours", domain.PayNow, domain.PayNow, 2, 1000},
		{"pay_later", domain.PayLater, domain.PayLater, 0, 0},
		{"empty_is_later", "", domain.PayLater, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := uc.Quote(ctx, "2", tt.pay)
			require.NoError(t, err)
			assert.Equal(t, "2", q.CarpenterID)
			assert.Equal(t, int64(500), q.HourlyRate)
			assert.Equal(t, tt.payment, q.Payment)
			assert.Equal(t, tt.hours, q.Hours)
			assert.Equal(t, tt.due, q.AmountDue)
		})
	}
}

func TestCarpenterUC_QuoteErrors(t *testing.T) {
	ctx := context.Background()
	uc := newTestCarpenterUC()

	_, err := uc.Quote(ctx, "99", domain.PayNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Quote(ctx, "1", "crypto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCarpenterUC_Specialties(t *testing.T) {
	got := newTestCarpenterUC().Specialties(context.Background())
	assert.Equal(t, []string{
		"Antique Restoration", "Custom Furniture", "Intricate Carving", "Kitchen Cabinets",
		"Modern Designs", "Polishing", "Repairs", "Wardrobe Assembly",
	}, got)
}

func TestCarpenterUC_List(t *testing.T) {
	uc := newTestCarpenterUC()
	f := uc.DefaultFilter()
	f.Specialties = []string{"Custom Furniture"}
	list, err := uc.List(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, carpenterIDs(list))

	c, err := uc.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Vikram Sharma", c.Name)
}
