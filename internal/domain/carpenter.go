package domain

type Carpenter struct {
	ID          string   `yaml:"id" json:"id" gorm:"primaryKey;size:20"`
	Name        string   `yaml:"name" json:"name" gorm:"size:140"`
	Experience  int      `yaml:"experience" json:"experience"`
	Rating      float64  `yaml:"rating" json:"rating" gorm:"type:decimal(3,1)"`
	HourlyRate  int64    `yaml:"hourly_rate" json:"hourly_rate"`
	Specialties []string `yaml:"specialty" json:"specialty" gorm:"type:jsonb;serializer:json"`
	Image       string   `yaml:"image" json:"image" gorm:"size:100"`
}

// HasAll indica si el carpintero cubre todas las especialidades pedidas.
func (c Carpenter) HasAll(specs []string) bool {
	for _, s := range specs {
		found := false
		for _, own := range c.Specialties {
			if own == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type PaymentOption string

const (
	PayNow   PaymentOption = "now"
	PayLater PaymentOption = "later"

	// horas incluidas en el pago por adelantado
	PrepaidHours = 2
)

type BookingQuote struct {
	CarpenterID string        `json:"carpenter_id"`
	Payment     PaymentOption `json:"payment"`
	HourlyRate  int64         `json:"hourly_rate"`
	Hours       int           `json:"hours"`
	AmountDue   int64         `json:"amount_due"`
}
