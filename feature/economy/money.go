package economy

import (
	"math"
	"strings"

	"economy-manager/feature/economy/models"

	"github.com/google/uuid"
)

// Round2 rounds v to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateAmount checks that amount is a finite positive number after rounding.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || Round2(amount) <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateCurrency checks currency against the known currencies.
func ValidateCurrency(currency string) error {
	switch currency {
	case models.CurrencyCoins, models.CurrencyCash:
		return nil
	default:
		return ErrInvalidCurrency
	}
}

// CurrencyFor returns the currency a listing is priced in.
func CurrencyFor(useCash bool) string {
	if useCash {
		return models.CurrencyCash
	}
	return models.CurrencyCoins
}

// NormalizeUUID parses a player id and returns its canonical lowercase form.
func NormalizeUUID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidUUID
	}
	return id.String(), nil
}

// Tax returns the tax withheld from amount at rate. The rate is clamped to [0, 1].
func Tax(amount, rate float64) float64 {
	if amount <= 0 || rate <= 0 || math.IsNaN(rate) {
		return 0
	}
	if rate > 1 {
		rate = 1
	}
	return Round2(amount * rate)
}
