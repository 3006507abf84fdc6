package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0.01))
	assert.NoError(t, ValidateAmount(10))
	assert.ErrorIs(t, ValidateAmount(0), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(0.004), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-5), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(math.NaN()), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(math.Inf(1)), ErrInvalidAmount)
}

func TestNormalizeUUID(t *testing.T) {
	id, err := NormalizeUUID(" 6F9619FF-8B86-D011-B42D-00C04FC964FF ")
	assert.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	_, err = NormalizeUUID("steve")
	assert.ErrorIs(t, err, ErrInvalidUUID)
}

func TestTax(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{"Standard", 100, 0.05, 5},
		{"Rounded", 33.33, 0.05, 1.67},
		{"ZeroRate", 100, 0, 0},
		{"NegativeRate", 100, -0.5, 0},
		{"Clamped", 40, 3, 40},
		{"ZeroAmount", 0, 0.05, 0},
		{"NaNRate", 10, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tax(tt.amount, tt.rate))
		})
	}
}

func TestCurrencyFor(t *testing.T) {
	assert.Equal(t, "cash", CurrencyFor(true))
	assert.Equal(t, "coins", CurrencyFor(false))
}
